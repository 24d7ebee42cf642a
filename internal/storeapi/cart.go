package storeapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
	"gorm.io/gorm"
)

// registerCartRoutes registers the cart endpoints
func registerCartRoutes() {
	webserver.ApiPOST("/Panier/", addCartItem)
	webserver.ApiGET("/Panier/", listCart)
	webserver.ApiDELETE("/Panier/:id", removeCartItem)
}

type commandeCreate struct {
	ProduitID int64 `json:"produit_id" validate:"required"`
	Quantite  int   `json:"quantite" validate:"required,gt=0"`
}

type commandeOut struct {
	ID          int64  `json:"id"`
	ProduitID   int64  `json:"produit_id"`
	NomProduit  string `json:"nom_produit"`
	Description string `json:"description"`
	Quantite    int    `json:"quantite"`
	Prix        int64  `json:"prix"`
	Total       int64  `json:"total"`
}

func newCommandeOut(item domain.CartItem) commandeOut {
	return commandeOut{
		ID:          item.ID,
		ProduitID:   item.ProduitID,
		NomProduit:  item.NomProduit,
		Description: item.Description,
		Quantite:    item.Quantite,
		Prix:        item.Prix,
		Total:       item.Total(),
	}
}

var (
	errProduitNotFound  = errors.New("produit introuvable")
	errStockInsuffisant = errors.New("stock insuffisant")
)

// addCartItem reserves stock and snapshots the product into a cart line.
// The decrement, the stock mirror sync and the insert are one transaction,
// so a failure leaves the product quantity untouched.
func addCartItem(c echo.Context) error {
	var payload commandeCreate
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart parameters")
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "produit_id and a positive quantite are required")
	}

	var item domain.CartItem
	err := GetDB(c).Transaction(func(tx *gorm.DB) error {
		var produit domain.Product
		if err := tx.Where("id = ?", payload.ProduitID).First(&produit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProduitNotFound
			}
			return err
		}
		if payload.Quantite > produit.Quantite {
			return errStockInsuffisant
		}

		produit.Quantite -= payload.Quantite
		produit.UpdatedAt = time.Now()
		if err := tx.Save(&produit).Error; err != nil {
			return err
		}
		if err := syncStock(tx, produit.ID, produit.Quantite); err != nil {
			return err
		}

		item = domain.CartItem{
			ProduitID:   produit.ID,
			NomProduit:  produit.Nom,
			Description: produit.Description,
			Prix:        produit.Prix,
			Quantite:    payload.Quantite,
		}
		return tx.Create(&item).Error
	})
	switch {
	case errors.Is(err, errProduitNotFound):
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Produit introuvable")
	case errors.Is(err, errStockInsuffisant):
		return fail(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Stock insuffisant")
	case err != nil:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to add cart item")
	}
	return ok(c, newCommandeOut(item))
}

func listCart(c echo.Context) error {
	var items []domain.CartItem
	if err := GetDB(c).Order("id").Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query cart")
	}
	out := make([]commandeOut, 0, len(items))
	for _, item := range items {
		out = append(out, newCommandeOut(item))
	}
	return ok(c, out)
}

// removeCartItem deletes a cart line. Reserved stock is not returned to
// the product.
func removeCartItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid cart item ID")
	}
	var item domain.CartItem
	if err := GetDB(c).Where("id = ?", id).First(&item).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "CART_ITEM_NOT_FOUND", "Panier non trouvé")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query cart item")
	}
	if err := GetDB(c).Delete(&domain.CartItem{}, id).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete cart item")
	}
	return ok(c, echo.Map{"message": fmt.Sprintf("Panier %d supprimé", id)})
}
