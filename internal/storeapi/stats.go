package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
)

// registerStatsRoutes registers the statistics endpoint
func registerStatsRoutes() {
	webserver.ApiGET("/api/statistique", getStatistique)
}

type topProduit struct {
	Nom    string `json:"nom"`
	Ventes int64  `json:"ventes"`
}

type statistiqueOut struct {
	TotalProduits   int64        `json:"total_produits"`
	ProduitsActifs  int64        `json:"produits_actifs"`
	ProduitsRupture int64        `json:"produits_rupture"`
	ChiffreAffaires int64        `json:"chiffre_affaires"`
	TopProduits     []topProduit `json:"top_produits"`
}

// getStatistique aggregates over the current catalog and ledger. Everything
// is recomputed per call; top-5 ties come back in engine order.
func getStatistique(c echo.Context) error {
	db := GetDB(c)
	var out statistiqueOut

	if err := db.Model(&domain.Product{}).Count(&out.TotalProduits).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics")
	}
	if err := db.Model(&domain.Product{}).Where("statut = ?", true).Count(&out.ProduitsActifs).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics")
	}
	if err := db.Model(&domain.Product{}).Where("quantite <= 0").Count(&out.ProduitsRupture).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics")
	}
	if err := db.Model(&domain.LedgerEntry{}).
		Select("COALESCE(SUM(quantite * prix), 0)").
		Scan(&out.ChiffreAffaires).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics")
	}

	out.TopProduits = make([]topProduit, 0, 5)
	if err := db.Model(&domain.LedgerEntry{}).
		Select("nom_produit AS nom, SUM(quantite) AS ventes").
		Group("nom_produit").
		Order("SUM(quantite) DESC").
		Limit(5).
		Scan(&out.TopProduits).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute statistics")
	}

	return ok(c, out)
}
