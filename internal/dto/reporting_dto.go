package dto

// CategoryItemCount is the number of items recorded under one category.
type CategoryItemCount struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	ItemCount    int    `json:"itemCount"`
}

// DashboardSummaryResponse aggregates the headline figures for the dashboard.
type DashboardSummaryResponse struct {
	TotalItems         int                   `json:"totalItems"`
	LowStockItems      int                   `json:"lowStockItems"`
	TotalReceipts      int                   `json:"totalReceipts"`
	TotalIssuances     int                   `json:"totalIssuances"`
	ItemsByCategory    []CategoryItemCount   `json:"itemsByCategory"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// LowStockReportResponse lists every item at or below its threshold.
type LowStockReportResponse struct {
	Items []ItemResponse `json:"items"`
}
