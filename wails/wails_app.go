package wails

import (
	"context"
	"embed"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/runtime"
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/api"
	"github.com/carlfranklin/AppStateAuto/http"
	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/service"
)

type WailsApp struct {
	ctx     context.Context
	svc     service.Service
	api     api.API
	db      *gorm.DB
	httpSvc *http.HttpService
}

func NewApp(svc service.Service) *WailsApp {
	return &WailsApp{
		svc:     svc,
		api:     api.NewAPI(svc, svc.GetDB(), svc.GetConfig(), svc.GetEventPublisher()),
		db:      svc.GetDB(),
		httpSvc: http.NewHttpService(svc, svc.GetEventPublisher()),
	}
}

// startup is called when the app starts. The context is saved so we can
// call the runtime methods; the frontend event bridge and renderer are
// attached here so nothing rendered later is missed.
func (app *WailsApp) startup(ctx context.Context) {
	app.ctx = ctx

	app.svc.GetEventPublisher().RegisterSubscriber(NewWailsEventSubscriber(ctx))
	app.svc.GetAppState().SetRenderer(NewWailsRenderer(ctx))
}

// domReady fires once the frontend has completed its first render. Restoring
// here means the restored values land in a UI that can actually show them.
func (app *WailsApp) domReady(ctx context.Context) {
	app.svc.RestoreState()
}

func (app *WailsApp) onBeforeClose(ctx context.Context) bool {
	// push any pending debounced save out before the window goes away
	if err := app.svc.SaveState(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to flush state before close")
	}
	return false
}

func (app *WailsApp) SelectDirectory() (string, error) {
	selection, err := runtime.OpenDirectoryDialog(app.ctx, runtime.OpenDialogOptions{
		Title: "Select Work Directory",
	})
	if err != nil {
		return "", err
	}
	return selection, nil
}

func LaunchWailsApp(app *WailsApp, assets embed.FS, appIcon []byte) {
	err := wails.Run(&options.App{
		Title:  "AppState",
		Width:  1055,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger: NewWailsLogger(),

		OnStartup:  app.startup,
		OnDomReady: app.domReady,
		OnBeforeClose: func(ctx context.Context) bool {
			return app.onBeforeClose(ctx)
		},
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title: "AppState",
				Icon:  appIcon,
			},
		},
		Linux: &linux.Options{
			Icon: appIcon,
		},
	})

	if err != nil {
		logger.Logger.Error().Err(err).Msg("failed to run Wails app")
	}
}

func NewWailsLogger() WailsLogger {
	return WailsLogger{}
}

type WailsLogger struct {
}

func (wailsLogger WailsLogger) Print(message string) {
	logger.Logger.Info().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Trace(message string) {
	logger.Logger.Trace().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Debug(message string) {
	logger.Logger.Debug().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Info(message string) {
	logger.Logger.Info().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Warning(message string) {
	logger.Logger.Warn().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Error(message string) {
	logger.Logger.Error().Bool("wails", true).Msg(message)
}

func (wailsLogger WailsLogger) Fatal(message string) {
	logger.Logger.Fatal().Bool("wails", true).Msg(message)
}
