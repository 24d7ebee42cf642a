package storeapi

import (
	"github.com/openboutique/boutique/internal/app"
)

var uploadDir string

// InitRouter registers every storefront endpoint on the web server.
// Route paths are part of the frontend contract and must not change.
func InitRouter(appx *app.Application) {
	uploadDir = appx.UploadDir()
	registerCatalogRoutes()
	registerCartRoutes()
	registerCheckoutRoutes()
	registerStatsRoutes()
	registerHealthRoutes()
}
