package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/api"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/config"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/engine"
	"github.com/saptarship2002/Mineral-Dashboard-ACPET/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel, cfg.LogFormat)

		// 1. The API goes live immediately; it answers 503 until the
		// table is loaded (or reports the load failure without dying).
		e := echo.New()
		e.HideBanner = true
		e.JSONSerializer = api.JSONSerializer{}
		e.Use(middleware.CORS())
		e.Use(middleware.Recover())
		e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}))
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogStatus:    true,
			LogMethod:    true,
			LogURI:       true,
			LogLatency:   true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				slog.Info("request",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency", v.Latency,
					"request_id", v.RequestID)
				return nil
			},
		}))

		h := api.NewHandler(cfg.HomeCountry, cfg.HomeCountryColor)
		h.RegisterRoutes(e)

		// 2. Load the table in the background
		go func() {
			slog.Info("loading mineral table", "path", cfg.DataFile)
			t0 := time.Now()

			store, err := engine.Load(cfg.DataFile, cfg.Sheet)
			if err != nil {
				slog.Error("data load failed, serving error state", "err", err)
				h.SetLoadError(err)
				return
			}

			h.SetEngine(engine.New(store, cfg.Unit))
			slog.Info("dashboard ready", "rows", store.Len(), "elapsed", time.Since(t0))
		}()

		slog.Info("server listening", "addr", cfg.Listen)
		return e.Start(cfg.Listen)
	},
}
