package storeapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistiqueEmpty(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/statistique", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats statistiqueOut
	decode(t, rec, &stats)
	assert.Zero(t, stats.TotalProduits)
	assert.Zero(t, stats.ProduitsActifs)
	assert.Zero(t, stats.ProduitsRupture)
	assert.Zero(t, stats.ChiffreAffaires, "revenue is 0 on an empty ledger")
	assert.Empty(t, stats.TopProduits)
}

func TestStatistiqueScenario(t *testing.T) {
	e := newTestServer(t)

	// create Widget {prix:10, quantite:5}, sell 3, check the aggregates
	widget := createTestProduct(t, e, "Widget", 10, 5)

	rec := doJSON(t, e, http.MethodPost, "/Panier/", map[string]interface{}{
		"produit_id": widget.ID,
		"quantite":   3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodPost, "/Caisse/payer-tout", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/api/statistique", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats statistiqueOut
	decode(t, rec, &stats)
	assert.Equal(t, int64(1), stats.TotalProduits)
	assert.Equal(t, int64(1), stats.ProduitsActifs)
	assert.Zero(t, stats.ProduitsRupture, "2 units left on hand")
	assert.Equal(t, int64(30), stats.ChiffreAffaires)
	require.Len(t, stats.TopProduits, 1)
	assert.Equal(t, "Widget", stats.TopProduits[0].Nom)
	assert.Equal(t, int64(3), stats.TopProduits[0].Ventes)
}

func TestStatistiqueRupture(t *testing.T) {
	e := newTestServer(t)

	soldOut := createTestProduct(t, e, "Epuisé", 10, 2)
	createTestProduct(t, e, "EnStock", 10, 7)

	rec := doJSON(t, e, http.MethodPost, "/Panier/", map[string]interface{}{
		"produit_id": soldOut.ID,
		"quantite":   2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/statistique", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats statistiqueOut
	decode(t, rec, &stats)
	assert.Equal(t, int64(2), stats.TotalProduits)
	assert.Equal(t, int64(1), stats.ProduitsRupture)
	assert.Zero(t, stats.ChiffreAffaires, "cart lines are not sales yet")
}
