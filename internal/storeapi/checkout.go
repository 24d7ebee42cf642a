package storeapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
	"gorm.io/gorm"
)

// registerCheckoutRoutes registers the checkout endpoints
func registerCheckoutRoutes() {
	webserver.ApiPOST("/Caisse/payer-tout", payerTout)
	webserver.ApiGET("/Caisse/", historiqueTickets)
}

type ticketOut struct {
	ID           int64  `json:"id"`
	NomProduit   string `json:"nom_produit"`
	PrixUnitaire int64  `json:"prix_unitaire"`
	Quantite     int    `json:"quantite"`
	Total        int64  `json:"total"`
}

func newTicketOut(entry domain.LedgerEntry) ticketOut {
	return ticketOut{
		ID:           entry.ID,
		NomProduit:   entry.NomProduit,
		PrixUnitaire: entry.Prix,
		Quantite:     entry.Quantite,
		Total:        entry.Total(),
	}
}

var errPanierVide = errors.New("panier vide")

// payerTout converts every cart line into a ledger entry and empties the
// cart, all or nothing.
func payerTout(c echo.Context) error {
	var tickets []ticketOut
	err := GetDB(c).Transaction(func(tx *gorm.DB) error {
		tickets = tickets[:0]
		var paniers []domain.CartItem
		if err := tx.Order("id").Find(&paniers).Error; err != nil {
			return err
		}
		if len(paniers) == 0 {
			return errPanierVide
		}
		for _, panier := range paniers {
			entry := domain.LedgerEntry{
				PanierID:    panier.ID,
				NomProduit:  panier.NomProduit,
				Description: panier.Description,
				Prix:        panier.Prix,
				Quantite:    panier.Quantite,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.CartItem{}, panier.ID).Error; err != nil {
				return err
			}
			tickets = append(tickets, newTicketOut(entry))
		}
		return nil
	})
	switch {
	case errors.Is(err, errPanierVide):
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "Panier vide")
	case err != nil:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to process checkout")
	}
	return ok(c, tickets)
}

// historiqueTickets returns every sale ever recorded, oldest first.
func historiqueTickets(c echo.Context) error {
	var entries []domain.LedgerEntry
	if err := GetDB(c).Order("id").Find(&entries).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query ledger")
	}
	out := make([]ticketOut, 0, len(entries))
	for _, entry := range entries {
		out = append(out, newTicketOut(entry))
	}
	return ok(c, out)
}
