package domain

import "time"

// Stock mirrors the available quantity of a product, one row per product.
// It is written inside the same transaction as every quantity mutation so
// DateModification tracks the last availability change.
type Stock struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProduitID          int64     `gorm:"uniqueIndex" json:"produit_id"`
	QuantiteDisponible int       `json:"quantite_disponible"`
	DateModification   time.Time `gorm:"autoUpdateTime" json:"date_modification"`
}

// TableName Specify table name
func (Stock) TableName() string {
	return "stock"
}
