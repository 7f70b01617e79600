package domain

// Category groups items for display and reporting.
// References from Item.CategoryID are soft: deleting a category leaves
// items pointing at the now-missing ID, and consumers render a fallback label.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}
