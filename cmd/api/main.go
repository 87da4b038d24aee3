// Package main runs the HTTP API server backing the public site and the
// admin console.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"meigu/internal/config"
	"meigu/internal/logger"
	"meigu/internal/notify"
	"meigu/internal/server"
	"meigu/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if err := cfg.ValidateDatabase(); err != nil {
		log.Error(fmt.Sprintf("❌ Invalid database config: %v", err))
		os.Exit(1)
	}

	log.Info("🚀 Starting API server", "addr", cfg.Server.Addr)

	st, err := store.Open(cfg.Database.DSN())
	if err != nil {
		log.Error(fmt.Sprintf("❌ Database connection failed: %v", err))
		os.Exit(1)
	}

	log.Info("✅ Database connected", "name", cfg.Database.Name)

	hub := notify.NewHub()
	srv := server.New(st, hub, log)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if len(cfg.Server.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.Server.CORSOrigins,
		}))
	} else {
		e.Use(middleware.CORS())
	}

	srv.Register(e)

	if err := e.Start(cfg.Server.Addr); err != nil {
		log.Error(fmt.Sprintf("❌ Server stopped: %v", err))
		os.Exit(1)
	}
}
