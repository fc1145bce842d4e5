package streamingplatform

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/catalog/categorylist"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/catalog/contentlist"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/favorite/favoriteadd"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/favorite/favoritelist"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/favorite/favoriteremove"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/health"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/plan/paymentconfirm"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/plan/planselect"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/profile/profilecreate"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/profile/profiledelete"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/profile/profilelist"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/profile/profileselect"
	"github.com/magabrotheeeer/streaming-platform/internal/http/handlers/profile/profileupdate"
	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/streaming-platform/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/streaming-platform/internal/services/catalog"
	entitlementservice "github.com/magabrotheeeer/streaming-platform/internal/services/entitlement"
	favoritesservice "github.com/magabrotheeeer/streaming-platform/internal/services/favorites"
	profileservice "github.com/magabrotheeeer/streaming-platform/internal/services/profile"
	"github.com/magabrotheeeer/streaming-platform/internal/session"
	"github.com/magabrotheeeer/streaming-platform/internal/storage/repository"
)

// Services объединяет бизнес-логику, необходимую для регистрации маршрутов.
type Services struct {
	Auth        *authservice.AuthService
	Entitlement *entitlementservice.EntitlementService
	Profiles    *profileservice.ProfileService
	Catalog     *catalogservice.CatalogService
	Favorites   *favoritesservice.FavoritesService
	Sessions    *session.Store
	Storage     *repository.Storage
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/health", health.New(logger, s.Storage).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, s.Sessions).ServeHTTP)

			r.Post("/plans/select", planselect.New(logger, s.Entitlement).ServeHTTP)
			r.Post("/plans/payment", paymentconfirm.New(logger, s.Entitlement).ServeHTTP)

			r.Get("/profiles", profilelist.New(logger, s.Profiles).ServeHTTP)
			r.Post("/profiles", profilecreate.New(logger, s.Profiles).ServeHTTP)
			r.Put("/profiles/{id}", profileupdate.New(logger, s.Profiles).ServeHTTP)
			r.Delete("/profiles/{id}", profiledelete.New(logger, s.Profiles).ServeHTTP)
			r.Post("/profiles/{id}/select", profileselect.New(logger, s.Profiles).ServeHTTP)

			// Каталог и избранное учитывают активный профиль сессии
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.ActiveProfileMiddleware(s.Profiles, logger))
				r.Get("/catalog/categories", categorylist.New(logger, s.Catalog).ServeHTTP)
				r.Get("/catalog/content", contentlist.New(logger, s.Catalog).ServeHTTP)
				r.Get("/favorites", favoritelist.New(logger, s.Favorites).ServeHTTP)
				r.Post("/favorites/{id}", favoriteadd.New(logger, s.Favorites).ServeHTTP)
				r.Delete("/favorites/{id}", favoriteremove.New(logger, s.Favorites).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
