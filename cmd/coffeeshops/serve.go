package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	"github.com/dmitrymomot/coffeeshops/pkg/auth"
	"github.com/dmitrymomot/coffeeshops/pkg/config"
	"github.com/dmitrymomot/coffeeshops/pkg/cookie"
	"github.com/dmitrymomot/coffeeshops/pkg/httpserver"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
	"github.com/dmitrymomot/coffeeshops/pkg/mongo"
	"github.com/dmitrymomot/coffeeshops/pkg/redis"
	"github.com/dmitrymomot/coffeeshops/pkg/session"
	"github.com/dmitrymomot/coffeeshops/views"
)

type serveConfig struct {
	baseConfig

	HTTP    httpserver.Config
	Redis   redis.Config
	Cookie  cookie.Config
	Session session.Config
	Auth    auth.Config
	Site    coffeeshop.Config
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg serveConfig) error {
	log := newLogger(cfg.baseConfig)

	client, store, err := openStore(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	readiness := []func(context.Context) error{mongo.Healthcheck(client)}

	var rdb goredis.UniversalClient
	if cfg.Session.Store == "redis" {
		c, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer c.Close()
		rdb = c
		readiness = append(readiness, redis.Healthcheck(c))
	}

	sessionStore, err := session.NewStore(cfg.Session, rdb)
	if err != nil {
		return err
	}
	if closer, ok := sessionStore.(io.Closer); ok {
		defer closer.Close()
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}
	sessions := session.NewFromConfig(cfg.Session,
		session.WithStore(sessionStore),
		session.WithCookieManager(cookies),
	)

	images, err := coffeeshop.LoadImageMap(cfg.Site.ImageMapFile)
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: views.ErrorPage,
		Username: func(r *http.Request) string {
			username, _ := session.UsernameFromContext(r.Context())
			return username
		},
	})

	site := coffeeshop.NewService(
		cfg.Site,
		store,
		auth.NewPasswordService(store,
			auth.WithBcryptCost(cfg.Auth.BcryptCost),
			auth.WithPasswordLogger(log),
		),
		sessions,
		views.New(),
		errorHandler,
		coffeeshop.WithLogger(log),
		coffeeshop.WithImages(images),
		coffeeshop.WithFlash(cookies),
		coffeeshop.WithReadinessChecks(readiness...),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		logger.AccessLog(log),
		middleware.Recoverer,
	)
	r.Mount("/", site.Handle())

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
