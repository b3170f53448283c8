package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"
	"uno-server/internal/config"
	"uno-server/internal/mux"
	"uno-server/pkg/db"
	"uno-server/pkg/store"

	"github.com/gorilla/handlers"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, newStore()))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newStore() store.Store {
	cfg := config.Instance()
	logrus.WithField("store", cfg.Store).Info("using game store")

	switch cfg.Store {
	case config.StorePostgres:
		// run the db migrations
		db.Migrate()
		return store.NewPostgres(db.Instance())
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).WithField("addr", cfg.Redis.Addr).Fatal("could not connect to redis")
		}

		return store.NewRedis(client, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	case config.StoreMemory, "":
		return store.NewMemory()
	}

	logrus.WithField("store", cfg.Store).Fatal("unknown store")
	return nil
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
