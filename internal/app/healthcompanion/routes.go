// Package healthcompanion собирает HTTP-приложение и его маршруты.
package healthcompanion

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/health-companion/internal/http/dispatch"
	contactadd "github.com/magabrotheeeer/health-companion/internal/http/handlers/contact/add"
	contactlist "github.com/magabrotheeeer/health-companion/internal/http/handlers/contact/list"
	contactremove "github.com/magabrotheeeer/health-companion/internal/http/handlers/contact/remove"
	contactupdate "github.com/magabrotheeeer/health-companion/internal/http/handlers/contact/update"
	userget "github.com/magabrotheeeer/health-companion/internal/http/handlers/user/get"
	userlogin "github.com/magabrotheeeer/health-companion/internal/http/handlers/user/login"
	userregister "github.com/magabrotheeeer/health-companion/internal/http/handlers/user/register"
	userupdate "github.com/magabrotheeeer/health-companion/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/health-companion/internal/http/middlewarectx"
	accountservice "github.com/magabrotheeeer/health-companion/internal/services/account"
	contactservice "github.com/magabrotheeeer/health-companion/internal/services/contact"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, accountService *accountservice.AccountService, contactService *contactservice.ContactService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware(),
		middlewarectx.RateLimitMiddleware(logger),
	)

	// Мобильный клиент ходит в одну точку входа и выбирает операцию
	// параметром action.
	d := dispatch.New(logger)
	d.Post("register", userregister.New(logger, accountService))
	d.Post("login", userlogin.New(logger, accountService))
	d.Get("get_user", userget.New(logger, accountService))
	d.Post("update_user", userupdate.New(logger, accountService))
	d.Post("add_contact", contactadd.New(logger, contactService))
	d.Post("update_contact", contactupdate.New(logger, contactService))
	d.Post("delete_contact", contactremove.New(logger, contactService))
	d.Get("list_contacts", contactlist.New(logger, contactService))
	r.Handle("/api", d)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
