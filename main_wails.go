//go:build wails
// +build wails

package main

import (
	"context"
	"embed"
	"fmt"
	"net"

	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/service"
	"github.com/carlfranklin/AppStateAuto/wails"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed appicon.png
var appIcon []byte

func main() {
	// Get a port lock on a rare port to prevent the app running twice
	listener, err := net.Listen("tcp", "0.0.0.0:25631")
	if err != nil {
		fmt.Println("Another instance of AppState is already running.")
		return
	}
	defer listener.Close()

	logger.Logger.Info().Msg("AppState starting in WAILS mode")
	ctx, cancel := context.WithCancel(context.Background())
	svc, err := service.NewService(ctx)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create service")
		return
	}

	app := wails.NewApp(svc)
	wails.StartDevServer(app)
	wails.LaunchWailsApp(app, assets, appIcon)
	logger.Logger.Info().Msg("Wails app exited")

	logger.Logger.Info().Msg("Cancelling service context...")
	// cancel the service context
	cancel()
	svc.Shutdown()
	logger.Logger.Info().Msg("Service exited")
}
