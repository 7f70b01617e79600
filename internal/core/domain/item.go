package domain

// Item represents a stocked article in the facility's warehouse.
// CurrentStock is derived state: it always equals the signed sum of all
// recorded transactions against the item, starting from zero at creation.
// Item edits go through the item service and never touch CurrentStock;
// only the ledger moves it.
type Item struct {
	ItemID       string `json:"itemID"` // Primary Key (UUID)
	Code         string `json:"code"`   // Facility item code, e.g. "MED-01"
	Name         string `json:"name"`
	CategoryID   string `json:"categoryID"` // Soft FK -> Category.CategoryID
	Unit         string `json:"unit"`       // Unit of measure (box, vial, ...)
	MinStock     int64  `json:"minStock"`   // Low-stock threshold, >= 0
	CurrentStock int64  `json:"currentStock"`
	Notes        string `json:"notes"`
	AuditFields
}

// IsLowStock reports whether the item sits at or below its threshold.
// The check is deliberately <= so an item resting exactly at MinStock
// still counts as critical.
func (i Item) IsLowStock() bool {
	return i.CurrentStock <= i.MinStock
}
