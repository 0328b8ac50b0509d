package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"

	"github.com/carlfranklin/AppStateAuto/appstate"
	"github.com/carlfranklin/AppStateAuto/config"
	"github.com/carlfranklin/AppStateAuto/constants"
	"github.com/carlfranklin/AppStateAuto/db"
	"github.com/carlfranklin/AppStateAuto/events"
	"github.com/carlfranklin/AppStateAuto/logger"
	"github.com/carlfranklin/AppStateAuto/persist"
	"github.com/carlfranklin/AppStateAuto/pkg/version"
	"github.com/carlfranklin/AppStateAuto/utils"
)

const JWT_SECRET_STORAGE_KEY = "jwt_secret"

type service struct {
	cfg config.Config

	db             *gorm.DB
	appState       appstate.Service
	stateAdapter   *persist.Adapter
	stateWriter    *persist.Writer
	trackers       *appstate.TrackerRegistry
	eventPublisher events.EventPublisher
	ctx            context.Context
	sessionId      string
	jwtSecret      string
}

func NewService(ctx context.Context) (*service, error) {
	// Load config from environment variables / .env file
	godotenv.Load(".env")
	appConfig := &config.AppConfig{}
	err := envconfig.Process("", appConfig)
	if err != nil {
		return nil, err
	}

	logger.Init(appConfig.LogLevel)
	logger.Logger.Info().Msg("AppStateAuto " + version.Tag)

	if appConfig.Workdir == "" {
		appConfig.Workdir = filepath.Join(xdg.DataHome, "/appstate")
		logger.Logger.Info().Interface("workdir", appConfig.Workdir).Msg("No workdir specified, using default")
	}
	// make sure workdir exists
	os.MkdirAll(appConfig.Workdir, os.ModePerm)

	if appConfig.LogToFile {
		err = logger.AddFileLogger(appConfig.Workdir)
		if err != nil {
			return nil, err
		}
	}

	for _, rawUrl := range []string{appConfig.BaseUrl, appConfig.FrontendUrl} {
		if rawUrl == "" {
			continue
		}
		err = utils.ValidateHTTPURL(rawUrl)
		if err != nil {
			return nil, err
		}
	}

	// If DATABASE_URI is a URI or a path, leave it unchanged.
	// If it only contains a filename, prepend the workdir.
	if !strings.HasPrefix(appConfig.DatabaseUri, "file:") {
		databasePath, _ := filepath.Split(appConfig.DatabaseUri)
		if databasePath == "" {
			appConfig.DatabaseUri = filepath.Join(appConfig.Workdir, appConfig.DatabaseUri)
		}
	}

	gormDB, err := db.NewDB(appConfig.DatabaseUri, appConfig.LogDBQueries)
	if err != nil {
		return nil, err
	}

	cfg := config.NewConfig(appConfig)

	kvStore := persist.NewGormKVStore(gormDB)

	jwtSecret := appConfig.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = loadOrCreateJWTSecret(kvStore)
		if err != nil {
			return nil, err
		}
	}

	eventPublisher := events.NewEventPublisher()

	sessionId := uuid.NewString()
	eventPublisher.SetGlobalProperty("session_id", sessionId)
	eventPublisher.SetGlobalProperty("version", version.Tag)

	svc := &service{
		cfg:            cfg,
		ctx:            ctx,
		eventPublisher: eventPublisher,
		db:             gormDB,
		trackers:       appstate.NewTrackerRegistry(),
		sessionId:      sessionId,
		jwtSecret:      jwtSecret,
	}

	eventPublisher.RegisterSubscriber(&stateChangeConsumer{
		db:        gormDB,
		sessionId: sessionId,
	})

	// The default message is applied through the regular setter, so the
	// change consumer registered above records one entry at startup.
	svc.appState = appstate.NewAppState(eventPublisher)
	svc.stateAdapter = persist.NewAdapter(kvStore, svc.appState, cfg.GetStaleWindow())
	svc.stateWriter = persist.NewWriter(svc.saveState, cfg.GetSaveDebounce())
	svc.stateWriter.Start(ctx)

	if appConfig.AutoSave {
		eventPublisher.RegisterSubscriber(&stateSaveConsumer{
			writer: svc.stateWriter,
		})
	}

	eventPublisher.Publish(&events.Event{
		Event: constants.APP_STARTED_EVENT,
		Properties: map[string]interface{}{
			"version": version.Tag,
		},
	})

	if appConfig.GoProfilerAddr != "" {
		startProfiler(ctx, appConfig.GoProfilerAddr)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(10 * time.Minute)
				svc.removeExcessStateChanges()
			}
		}
	}()

	return svc, nil
}

// RestoreState loads the stored snapshot into the live state. It is called
// from the UI layer's first-paint hook and reports whether a snapshot was
// applied. Load failures leave the defaults in place.
func (svc *service) RestoreState() bool {
	restored, err := svc.stateAdapter.Load()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load stored state, continuing with defaults")
		return false
	}
	if restored {
		logger.Logger.Info().
			Str("message", svc.appState.GetMessage()).
			Int("count", svc.appState.GetCount()).
			Msg("Restored state from previous session")
	}
	return restored
}

// SaveState writes the current snapshot immediately, bypassing the debounce.
func (svc *service) SaveState() error {
	return svc.stateWriter.Flush()
}

func (svc *service) StateLoaded() bool {
	return svc.stateAdapter.Loaded()
}

// saveState is the writer callback; all saves funnel through it.
func (svc *service) saveState() error {
	saved, err := svc.stateAdapter.Save()
	if err != nil {
		return err
	}
	if saved {
		svc.eventPublisher.Publish(&events.Event{
			Event: constants.STATE_SAVED_EVENT,
			Properties: &events.StateSavedEventProperties{
				SavedAt: svc.appState.GetLastSaveTime(),
			},
		})
	}
	return nil
}

func (svc *service) Shutdown() {
	svc.eventPublisher.PublishSync(&events.Event{
		Event: constants.APP_STOPPED_EVENT,
	})
	err := svc.stateWriter.Flush()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to flush state before shutdown")
	}
	db.Stop(svc.db)
}

func loadOrCreateJWTSecret(kvStore persist.KVStore) (string, error) {
	existing, err := kvStore.Read(JWT_SECRET_STORAGE_KEY)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return string(existing), nil
	}

	secret := make([]byte, 32)
	_, err = rand.Read(secret)
	if err != nil {
		return "", err
	}
	encoded := hex.EncodeToString(secret)
	err = kvStore.Write(JWT_SECRET_STORAGE_KEY, []byte(encoded))
	if err != nil {
		return "", err
	}
	logger.Logger.Info().Msg("Generated new JWT secret")
	return encoded, nil
}

func startProfiler(ctx context.Context, addr string) {
	srv := &http.Server{Addr: addr}

	go func() {
		<-ctx.Done()
		err := srv.Shutdown(context.Background())
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down profiler server")
		}
	}()

	go func() {
		logger.Logger.Info().Str("addr", addr).Msg("Starting profiler server")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error().Err(err).Msg("Profiler server failed")
		}
	}()
}

func (svc *service) removeExcessStateChanges() {
	logger.Logger.Debug().Msg("Cleaning up excess state changes")

	maxChanges := constants.MAX_STATE_CHANGES
	// estimated less than 1 second to delete, it should not lock the DB
	maxChangesToDelete := 5000
	// if we only have a few excess rows, don't run the task
	minChangesToDelete := 100

	var changes []db.StateChange
	err := svc.db.Select("id").Order("id asc").Limit(maxChanges + maxChangesToDelete).Find(&changes).Error
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to fetch state changes")
	}

	numChangesToDelete := len(changes) - maxChanges
	if numChangesToDelete < minChangesToDelete {
		return
	}
	deleteChangesBelowId := changes[numChangesToDelete].ID

	logger.Logger.Debug().
		Int("amount", numChangesToDelete).
		Uint("below_id", deleteChangesBelowId).
		Msg("Removing excess state changes")

	startTime := time.Now()
	err = svc.db.Exec("delete from state_changes where id < ?", deleteChangesBelowId).Error
	if err != nil {
		logger.Logger.Error().Err(err).
			Int("amount", numChangesToDelete).
			Uint("below_id", deleteChangesBelowId).
			Msg("Failed to delete excess state changes")
		return
	}
	logger.Logger.Info().
		Int("amount", numChangesToDelete).
		Uint("below_id", deleteChangesBelowId).
		Dur("duration", time.Since(startTime)).
		Msg("Removed excess state changes")
}

func (svc *service) GetAppState() appstate.Service {
	return svc.appState
}

func (svc *service) GetTrackers() *appstate.TrackerRegistry {
	return svc.trackers
}

func (svc *service) GetEventPublisher() events.EventPublisher {
	return svc.eventPublisher
}

func (svc *service) GetDB() *gorm.DB {
	return svc.db
}

func (svc *service) GetConfig() config.Config {
	return svc.cfg
}

func (svc *service) GetSessionId() string {
	return svc.sessionId
}

func (svc *service) GetJWTSecret() string {
	return svc.jwtSecret
}
