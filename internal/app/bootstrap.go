package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"applyflow/internal/config"
	"applyflow/internal/database"
	dbpostgres "applyflow/internal/database/postgres"
	"applyflow/internal/delivery/http/middleware"
	"applyflow/internal/delivery/http/routes"
	"applyflow/internal/infrastructure/cache"
	"applyflow/internal/infrastructure/profile"
	"applyflow/internal/pkg/jwt"
	"applyflow/internal/pkg/logger"
	"applyflow/internal/repository"
	"applyflow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber  *fiber.App
	Logger *logger.Logger
}

// Bootstrap wires the whole service: logger, database, session store,
// profile collaborator client, websocket hub and the route tree. The
// returned cleanup closes what was opened, in reverse order.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var db database.DB
	if strings.TrimSpace(cfg.Database.DBHost) != "" {
		db, err = dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
	} else {
		log.Warn("database not configured, event feed disabled")
	}

	redis := cache.NewRedis(cfg.Redis, log)
	store := cache.NewSessionStore(redis, cfg.Redis.SessionTTL)

	profiles, err := profile.NewHTTPClient(cfg.ProfileAPI.BaseURL, cfg.ProfileAPI.Timeout, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init profile client: %w", err)
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret)

	hub := ws.NewHub(log)
	go hub.Run()

	var events repository.ApplicationEventRepository
	if db != nil {
		events = repository.NewPostgresApplicationEventRepository(db)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	f.Use(middleware.NewErrorMiddleware(log).Middleware())

	routes.NewRegistry().Register(f, routes.Deps{
		Cfg:      cfg,
		JWT:      jwtSvc,
		Store:    store,
		Profiles: profiles,
		Events:   events,
		Hub:      hub,
		Logger:   log,
	})

	cleanup := func() error {
		var firstErr error
		if err := redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		if db != nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		log.Sync()
		return firstErr
	}

	return &App{Fiber: f, Logger: log}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
