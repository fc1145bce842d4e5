// Package streamingplatform собирает приложение стримингового сервиса:
// хранилище, кеш, сессии, бизнес-логику и HTTP-сервер.
package streamingplatform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/streaming-platform/internal/cache"
	"github.com/magabrotheeeer/streaming-platform/internal/config"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/streaming-platform/internal/migrations"
	"github.com/magabrotheeeer/streaming-platform/internal/services/auth"
	"github.com/magabrotheeeer/streaming-platform/internal/services/catalog"
	"github.com/magabrotheeeer/streaming-platform/internal/services/entitlement"
	"github.com/magabrotheeeer/streaming-platform/internal/services/favorites"
	"github.com/magabrotheeeer/streaming-platform/internal/services/profile"
	"github.com/magabrotheeeer/streaming-platform/internal/session"
	"github.com/magabrotheeeer/streaming-platform/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и внешние зависимости приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключает PostgreSQL и Redis, применяет
// миграции, собирает сервисы и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}
	sessions := session.New(cacheRedis.Db)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := auth.NewAuthService(db, jwtMaker)
	entitlementService := entitlement.NewEntitlementService(db, logger)
	profileService := profile.NewProfileService(db, sessions, logger)
	catalogService := catalog.NewCatalogService(db, cacheRedis, cfg.ChildAllowedCategories, logger)
	favoritesService := favorites.NewFavoritesService(db, profileService, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:        authService,
		Entitlement: entitlementService,
		Profiles:    profileService,
		Catalog:     catalogService,
		Favorites:   favoritesService,
		Sessions:    sessions,
		Storage:     db,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его
// при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
