package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/openboutique/boutique/config"
	"github.com/openboutique/boutique/internal/domain"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// getDatabase opens the configured store. sqlite is the default and keeps
// everything in a single file under the workdir; postgres is available for
// deployments that outgrow it.
func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	}

	var dialector gorm.Dialector
	switch cfg.Type {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
			cfg.Host, cfg.User, cfg.Passwd, cfg.Name, cfg.Port, time.Local.String())
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(filepath.Join(workdir, cfg.Name))
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		zap.S().Panicf("failed to connect database: %v", err)
	}
	return db
}

// checkDemoProducts seeds a small demo catalog in debug mode so a fresh
// storefront has something to render.
func (a *Application) checkDemoProducts() {
	defaultProducts := []domain.Product{
		{Nom: "demo-widget-basic", Description: "Widget de demonstration", Prix: 999, Types: "widget", Quantite: 100, Statut: true},
		{Nom: "demo-widget-pro", Description: "Widget pro", Prix: 2450, Types: "widget", Quantite: 50, Statut: true},
		{Nom: "demo-addon-support", Description: "Support annuel", Prix: 4995, Types: "service", Quantite: 200, Statut: false},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("nom = ?", p.Nom).Count(&count)
		if count == 0 {
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("nom", p.Nom), zap.Error(err))
				continue
			}
			if err := a.gormDB.Create(&domain.Stock{ProduitID: p.ID, QuantiteDisponible: p.Quantite}).Error; err != nil {
				zap.L().Error("failed to create default stock row", zap.String("nom", p.Nom), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("nom", p.Nom))
			}
		}
	}
}
