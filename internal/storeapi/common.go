package storeapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
	"gorm.io/gorm"
)

// GetDB returns the request-scoped database session installed by the web
// server middleware.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.DBContextKey).(*gorm.DB)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// fail emits a machine code plus the human-readable detail message the
// storefront displays.
func fail(c echo.Context, status int, code string, detail string) error {
	return c.JSON(status, echo.Map{"code": code, "detail": detail})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// syncStock keeps a product's stock mirror aligned with its quantity.
// Callers run it inside the same transaction as the quantity change.
func syncStock(tx *gorm.DB, produitID int64, quantite int) error {
	res := tx.Model(&domain.Stock{}).Where("produit_id = ?", produitID).
		Update("quantite_disponible", quantite)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tx.Create(&domain.Stock{ProduitID: produitID, QuantiteDisponible: quantite}).Error
	}
	return nil
}
