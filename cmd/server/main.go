package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fln/pcors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vrischmann/envconfig"
	_ "modernc.org/sqlite"

	"github.com/panuwat-oat/dummy-calculator/internal/common/clock"
	"github.com/panuwat-oat/dummy-calculator/internal/common/uuid"
	"github.com/panuwat-oat/dummy-calculator/internal/handlers/httpapi"
	activeGameRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/active_game"
	historyRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/history"
	roomRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/room"
	settingsRepo "github.com/panuwat-oat/dummy-calculator/internal/repositories/settings"
	"github.com/panuwat-oat/dummy-calculator/internal/scoring"
	gameService "github.com/panuwat-oat/dummy-calculator/internal/services/game"
	"github.com/panuwat-oat/dummy-calculator/internal/services/roomsync"
)

// conf stores application configuration, it is controlled via environment
// variables on application startup.
var conf struct {
	Listen        string        `envconfig:"default=:8080"`
	RedisAddr     string        `envconfig:"default=localhost:6379"`
	RedisPassword string        `envconfig:"optional"`
	HistoryDB     string        `envconfig:"default=dummy-history.db"`
	WinThreshold  int           `envconfig:"default=500"`
	PollInterval  time.Duration `envconfig:"default=2s"`
}

func main() {
	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	if err := envconfig.InitWithPrefix(&conf, "DUMMY"); err != nil {
		logrus.WithError(err).Fatal("parsing environment variables")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Fatal("connecting to Redis")
	}

	historyDB, err := sql.Open("sqlite", conf.HistoryDB)
	if err != nil {
		logrus.WithError(err).Fatal("opening history database")
	}
	defer historyDB.Close()

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating room repository")
	}

	activeGames, err := activeGameRepo.NewRedis(&activeGameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating active game repository")
	}

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating settings repository")
	}

	history, err := historyRepo.NewSQLite(&historyRepo.Config{
		DB: historyDB,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating history repository")
	}

	gameSvc, err := gameService.New(&gameService.Config{
		RoomRepo:       rooms,
		ActiveGameRepo: activeGames,
		HistoryRepo:    history,
		SettingsRepo:   settings,
		Engine:         scoring.New(&scoring.Config{WinThreshold: conf.WinThreshold}),
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating game service")
	}

	roomWatcher, err := roomsync.New(&roomsync.Config{
		GameService: gameSvc,
		Interval:    conf.PollInterval,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating room watcher")
	}

	handler, err := httpapi.New(&httpapi.Config{
		GameService: gameSvc,
		RoomWatcher: roomWatcher,
	})
	if err != nil {
		logrus.WithError(err).Fatal("creating HTTP handler")
	}

	server := &http.Server{
		Addr:    conf.Listen,
		Handler: pcors.Default(handler.Router()),
	}
	stopped := make(chan struct{})
	go func() {
		logrus.WithField("listen", conf.Listen).Info("starting web server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logrus.WithError(err).Error("http server stopped with error")
		}
		close(stopped)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("calling shutdown on http server")
	}
	<-stopped
	logrus.Info("graceful shutdown complete")
}
