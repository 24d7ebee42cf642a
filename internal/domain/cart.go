package domain

import "time"

// CartItem is a pending purchase line. Product fields are copied at add
// time so later catalog edits or deletions do not change the line.
type CartItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProduitID   int64     `gorm:"index" json:"produit_id"`
	NomProduit  string    `json:"nom_produit"`
	Description string    `json:"description"`
	Prix        int64     `json:"prix"`
	Quantite    int       `json:"quantite"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName Specify table name
func (CartItem) TableName() string {
	return "paniers"
}

// Total is the line amount in minor currency units.
func (p CartItem) Total() int64 {
	return int64(p.Quantite) * p.Prix
}
