package storeapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// registerCatalogRoutes registers the product CRUD endpoints
func registerCatalogRoutes() {
	webserver.ApiGET("/Ecommerce/", listProducts)
	webserver.ApiGET("/Ecommerce/:id", getProduct)
	webserver.ApiPOST("/Ecommerce/", createProduct)
	webserver.ApiPUT("/Ecommerce/:id", updateProduct)
	webserver.ApiPUT("/Ecommerce/:id/quantite", updateProductQuantite)
	webserver.ApiDELETE("/Ecommerce/:id", deleteProduct)
}

// productForm carries the multipart fields of the create/update endpoints.
type productForm struct {
	Nom         string
	Description string
	Prix        int64
	Quantite    int
	Statut      bool
	Types       string
}

func bindProductForm(c echo.Context) (*productForm, error) {
	form := &productForm{
		Nom:         strings.TrimSpace(c.FormValue("nom")),
		Description: c.FormValue("description"),
		Types:       strings.TrimSpace(c.FormValue("types")),
		Statut:      cast.ToBool(c.FormValue("statut")),
	}
	if form.Nom == "" {
		return nil, errors.New("nom is required")
	}
	if form.Types == "" {
		return nil, errors.New("types is required")
	}
	prix, err := cast.ToInt64E(c.FormValue("prix"))
	if err != nil {
		return nil, errors.New("prix must be an integer")
	}
	quantite, err := cast.ToIntE(c.FormValue("quantite"))
	if err != nil {
		return nil, errors.New("quantite must be an integer")
	}
	form.Prix = prix
	form.Quantite = quantite
	return form, nil
}

func listProducts(c echo.Context) error {
	var rows []domain.Product
	if err := GetDB(c).Order("id").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products")
	}
	return ok(c, rows)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Produit non trouvé")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product")
	}
	return ok(c, p)
}

func createProduct(c echo.Context) error {
	form, err := bindProductForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	}

	var imageName string
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		name, serr := saveUploadImage(uploadDir, form.Nom, fh)
		if serr != nil {
			return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store product image")
		}
		imageName = name
	}

	now := time.Now()
	p := domain.Product{
		Nom:         form.Nom,
		Description: form.Description,
		Prix:        form.Prix,
		Quantite:    form.Quantite,
		Statut:      form.Statut,
		Types:       form.Types,
		Image:       imageName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = GetDB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		return tx.Create(&domain.Stock{ProduitID: p.ID, QuantiteDisponible: p.Quantite}).Error
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product")
	}
	return ok(c, p)
}

func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Produit non trouvé")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product")
	}

	form, err := bindProductForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	}

	p.Nom = form.Nom
	p.Description = form.Description
	p.Prix = form.Prix
	p.Quantite = form.Quantite
	p.Types = form.Types
	p.Statut = form.Statut
	p.UpdatedAt = time.Now()

	// Image is only replaced when a new file is supplied; the previous
	// file stays on disk.
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		name, serr := saveUploadImage(uploadDir, form.Nom, fh)
		if serr != nil {
			return fail(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to store product image")
		}
		p.Image = name
	}

	err = GetDB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		return syncStock(tx, p.ID, p.Quantite)
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product")
	}
	return ok(c, p)
}

func updateProductQuantite(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
	}
	raw := c.QueryParam("quantite")
	if raw == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "quantite query parameter is required")
	}
	quantite, err := cast.ToIntE(raw)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "quantite must be an integer")
	}

	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Produit non trouvé")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product")
	}

	p.Quantite = quantite
	p.UpdatedAt = time.Now()
	err = GetDB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		return syncStock(tx, p.ID, p.Quantite)
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product quantity")
	}
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Produit non trouvé")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product")
	}

	// Cart and ledger rows are denormalized snapshots, so they survive the
	// product's removal untouched. The stock mirror goes with the product.
	err = GetDB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Product{}, id).Error; err != nil {
			return err
		}
		return tx.Where("produit_id = ?", id).Delete(&domain.Stock{}).Error
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product")
	}
	return ok(c, echo.Map{"detail": "Produit supprimé"})
}
