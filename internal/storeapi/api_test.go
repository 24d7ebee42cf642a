package storeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/openboutique/boutique/config"
	"github.com/openboutique/boutique/internal/app"
	"github.com/openboutique/boutique/internal/domain"
	"github.com/openboutique/boutique/internal/webserver"
	"github.com/stretchr/testify/require"
)

// newTestServer boots the full stack (config, app, webserver, routes) over
// a fresh sqlite file in a per-test temp dir.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.LoadConfig("")
	cfg.System.Workdir = t.TempDir()
	cfg.System.Debug = false
	cfg.Database.Type = "sqlite"
	cfg.Database.Name = "test.db"
	cfg.Logger.Mode = "development"
	cfg.Logger.FileEnable = false

	appx := app.NewApplication(cfg)
	appx.Init(cfg)
	t.Cleanup(appx.Release)

	webserver.Init(appx)
	InitRouter(appx)
	return webserver.Instance().Echo()
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// doForm sends a multipart form; files maps field name to filename and
// content.
func doForm(t *testing.T, e *echo.Echo, method, path string, fields map[string]string, files map[string][2]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, file := range files {
		fw, err := w.CreateFormFile(field, file[0])
		require.NoError(t, err)
		_, err = io.WriteString(fw, file[1])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func productFields(nom string, prix int64, quantite int) map[string]string {
	return map[string]string{
		"nom":         nom,
		"description": "produit de test",
		"prix":        strconv.FormatInt(prix, 10),
		"quantite":    strconv.Itoa(quantite),
		"types":       "widget",
		"statut":      "true",
	}
}

func createTestProduct(t *testing.T, e *echo.Echo, nom string, prix int64, quantite int) domain.Product {
	t.Helper()
	rec := doForm(t, e, http.MethodPost, "/Ecommerce/", productFields(nom, prix, quantite), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p domain.Product
	decode(t, rec, &p)
	return p
}

func fetchProduct(t *testing.T, e *echo.Echo, id int64) (*httptest.ResponseRecorder, domain.Product) {
	t.Helper()
	rec := doJSON(t, e, http.MethodGet, "/Ecommerce/"+strconv.FormatInt(id, 10), nil)
	var p domain.Product
	if rec.Code == http.StatusOK {
		decode(t, rec, &p)
	}
	return rec, p
}
