package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/openboutique/boutique/config"
	"github.com/openboutique/boutique/internal/app"
	"github.com/openboutique/boutique/internal/storeapi"
	"github.com/openboutique/boutique/internal/webserver"
	"go.uber.org/zap"
)

var (
	confFile = flag.String("conf", "boutique.yml", "config file")
	initDb   = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")
	showVer  = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVer {
		fmt.Println(version)
		return
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig(*confFile)

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "workdir %s: %v\n", cfg.System.Workdir, err)
		os.Exit(1)
	}

	appx := app.NewApplication(cfg)
	appx.Init(cfg)
	defer appx.Release()

	if *initDb {
		appx.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	webserver.Init(appx)
	storeapi.InitRouter(appx)

	if err := webserver.Listen(); err != nil {
		zap.S().Fatal(err)
	}
}
