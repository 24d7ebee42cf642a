package domain

import "time"

// Product is a sellable catalog item. Prices are stored in minor
// currency units, quantity is the on-hand count the cart reserves from.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	Nom         string    `gorm:"index" json:"nom" form:"nom"`
	Description string    `json:"description" form:"description"`
	Prix        int64     `json:"prix" form:"prix"`
	Types       string    `gorm:"size:64" json:"types" form:"types"`
	Quantite    int       `json:"quantite" form:"quantite"`
	Statut      bool      `gorm:"default:false" json:"statut" form:"statut"`
	Image       string    `gorm:"size:1024" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "market_produit"
}
