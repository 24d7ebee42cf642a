package domain

import "time"

// LedgerEntry is an immutable record of a sold line, created at checkout
// from a cart item. Entries are never updated or deleted.
type LedgerEntry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PanierID    int64     `json:"panier_id"`
	NomProduit  string    `json:"nom_produit"`
	Description string    `json:"description"`
	Prix        int64     `json:"prix"`
	Quantite    int       `json:"quantite"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName Specify table name
func (LedgerEntry) TableName() string {
	return "caisses"
}

// Total is the line amount in minor currency units.
func (e LedgerEntry) Total() int64 {
	return int64(e.Quantite) * e.Prix
}
