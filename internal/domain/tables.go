package domain

var Tables = []interface{}{
	// Catalog
	&Product{},
	&Stock{},
	// Sales
	&CartItem{},
	&LedgerEntry{},
}
