package storeapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/openboutique/boutique/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRoundTrip(t *testing.T) {
	e := newTestServer(t)

	created := createTestProduct(t, e, "Widget", 10, 5)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Widget", created.Nom)
	assert.Equal(t, int64(10), created.Prix)
	assert.Equal(t, 5, created.Quantite)
	assert.True(t, created.Statut)

	rec, fetched := fetchProduct(t, e, created.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Nom, fetched.Nom)
	assert.Equal(t, created.Description, fetched.Description)
	assert.Equal(t, created.Prix, fetched.Prix)
	assert.Equal(t, created.Quantite, fetched.Quantite)
	assert.Equal(t, created.Types, fetched.Types)

	rec = doJSON(t, e, http.MethodGet, "/Ecommerce/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.Product
	decode(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestGetProductNotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/Ecommerce/12345", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp map[string]string
	decode(t, rec, &errResp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errResp["code"])
	assert.Equal(t, "Produit non trouvé", errResp["detail"])
}

func TestCreateProductMissingFields(t *testing.T) {
	e := newTestServer(t)

	testCases := []struct {
		name   string
		fields map[string]string
	}{
		{"missing nom", map[string]string{"description": "d", "prix": "10", "quantite": "5", "types": "widget"}},
		{"missing types", map[string]string{"nom": "X", "description": "d", "prix": "10", "quantite": "5"}},
		{"bad prix", map[string]string{"nom": "X", "description": "d", "prix": "abc", "quantite": "5", "types": "widget"}},
		{"bad quantite", map[string]string{"nom": "X", "description": "d", "prix": "10", "quantite": "abc", "types": "widget"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doForm(t, e, http.MethodPost, "/Ecommerce/", tc.fields, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := doJSON(t, e, http.MethodGet, "/Ecommerce/", nil)
	var list []domain.Product
	decode(t, rec, &list)
	assert.Empty(t, list, "rejected creates must not persist anything")
}

func TestCreateProductWithImage(t *testing.T) {
	e := newTestServer(t)

	rec := doForm(t, e, http.MethodPost, "/Ecommerce/", productFields("Gadget", 20, 3),
		map[string][2]string{"image": {"photo.png", "fake-png-bytes"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p domain.Product
	decode(t, rec, &p)
	assert.Equal(t, "Gadget_photo.png", p.Image)

	data, err := os.ReadFile(filepath.Join(uploadDir, p.Image))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestUpdateProduct(t *testing.T) {
	e := newTestServer(t)
	created := createTestProduct(t, e, "Widget", 10, 5)

	fields := productFields("Widget v2", 15, 8)
	fields["statut"] = "false"
	rec := doForm(t, e, http.MethodPut, "/Ecommerce/"+strconv.FormatInt(created.ID, 10), fields, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated domain.Product
	decode(t, rec, &updated)
	assert.Equal(t, "Widget v2", updated.Nom)
	assert.Equal(t, int64(15), updated.Prix)
	assert.Equal(t, 8, updated.Quantite)
	assert.False(t, updated.Statut)

	rec = doForm(t, e, http.MethodPut, "/Ecommerce/99999", fields, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductQuantite(t *testing.T) {
	e := newTestServer(t)
	created := createTestProduct(t, e, "Widget", 10, 5)
	idPath := "/Ecommerce/" + strconv.FormatInt(created.ID, 10) + "/quantite"

	rec := doJSON(t, e, http.MethodPut, idPath+"?quantite=42", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p domain.Product
	decode(t, rec, &p)
	assert.Equal(t, 42, p.Quantite)

	rec = doJSON(t, e, http.MethodPut, idPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing quantite param")

	rec = doJSON(t, e, http.MethodPut, "/Ecommerce/99999/quantite?quantite=1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	e := newTestServer(t)
	created := createTestProduct(t, e, "Widget", 10, 5)

	rec := doJSON(t, e, http.MethodDelete, "/Ecommerce/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fetchProduct(t, e, created.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/Ecommerce/99999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "deleting a missing product is NotFound")
}
