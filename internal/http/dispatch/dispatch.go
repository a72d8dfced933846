// Package dispatch реализует единую точку входа API мобильного приложения.
// Операция выбирается параметром запроса action, как того ожидает клиент:
// /api?action=register, /api?action=login и так далее.
package dispatch

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
)

type route struct {
	method  string
	handler http.Handler
}

// Dispatcher сопоставляет значение action с обработчиком операции.
type Dispatcher struct {
	log    *slog.Logger
	routes map[string]route
}

// New создаёт пустой Dispatcher.
func New(log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		log:    log,
		routes: make(map[string]route),
	}
}

// Get регистрирует обработчик action для GET-запросов.
func (d *Dispatcher) Get(action string, h http.Handler) {
	d.routes[action] = route{method: http.MethodGet, handler: h}
}

// Post регистрирует обработчик action для POST-запросов.
func (d *Dispatcher) Post(action string, h http.Handler) {
	d.routes[action] = route{method: http.MethodPost, handler: h}
}

// ServeHTTP выбирает обработчик по action. Неизвестный action — 404,
// известный action с неподдерживаемым методом — 405.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "dispatch.ServeHTTP"

	log := d.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	action := r.URL.Query().Get("action")
	rt, ok := d.routes[action]
	if !ok {
		log.Info("unknown action", slog.String("action", action))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Accion no encontrada"))
		return
	}
	if r.Method != rt.method {
		log.Info("method not allowed for action",
			slog.String("action", action), slog.String("method", r.Method))
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Metodo no permitido"))
		return
	}

	rt.handler.ServeHTTP(w, r)
}
