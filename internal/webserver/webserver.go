package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openboutique/boutique/internal/app"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBContextKey is where the request-scoped gorm session lives in the echo
// context. Handlers access it through storeapi.GetDB.
const DBContextKey = "boutique_db"

type WebServer struct {
	root *echo.Echo
	appx *app.Application
}

var server *WebServer

func Init(appx *app.Application) {
	server = NewWebServer(appx)
}

func Instance() *WebServer {
	return server
}

func NewWebServer(appx *app.Application) *WebServer {
	s := &WebServer{root: echo.New(), appx: appx}
	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.JSONSerializer = NewJsoniterSerializer()
	s.root.Validator = NewValidator()
	s.root.Use(middleware.Recover())
	// The storefront frontend runs on a different origin; the API is open
	// to any origin, method and header.
	s.root.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))
	s.root.Use(s.sessionMiddleware)
	s.root.Use(requestLogger)

	// Uploaded product images, served verbatim
	s.root.Static("/uploads", appx.UploadDir())
	return s
}

// sessionMiddleware attaches a request-scoped database session. The session
// carries the request context so storage work is released with the request
// on every exit path.
func (s *WebServer) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session := s.appx.DB().Session(&gorm.Session{NewDB: true}).WithContext(c.Request().Context())
		c.Set(DBContextKey, session)
		return next(c)
	}
}

func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		zap.L().Info("http request",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}

// Echo exposes the underlying router, mainly for handler tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func Listen() error {
	cfg := server.appx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("Starting %s web server on %s", cfg.System.Appid, addr)
	return server.root.Start(addr)
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(path, h)
}
