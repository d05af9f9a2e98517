package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/labstack/echo/v5"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ztrue/tracerr"

	"github.com/l3ony/Pumpkin/config"
)

func main() {
	app := pocketbase.New()

	var configPath string
	app.RootCmd.PersistentFlags().StringVar(&configPath, "game-config", "configuration.toml", "path to the game server TOML configuration")

	app.OnBeforeServe().Add(func(se *core.ServeEvent) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return tracerr.Wrap(err)
		}

		gs, err := newGameServer(app, cfg)
		if err != nil {
			return tracerr.Wrap(err)
		}

		se.Router.GET("/bridge", gs.bridgeHandler)
		se.Router.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

		registerRecordHooks(app, gs)

		go func() {
			if err := gs.listen(context.Background()); err != nil {
				app.Logger().Error("game listener failed", slog.Any("stacktrace", tracerr.StackTrace(err)))
			}
		}()

		return nil
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
