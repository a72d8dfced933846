package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/models"
)

// ContactLister описывает сервис чтения контактов пользователя.
type ContactLister interface {
	List(ctx context.Context, userID int) ([]*models.Contact, error)
}

type Handler struct {
	log      *slog.Logger
	contacts ContactLister
}

func New(log *slog.Logger, contacts ContactLister) *Handler {
	return &Handler{
		log:      log,
		contacts: contacts,
	}
}

// ServeHTTP
// @Summary Список контактов пользователя
// @Tags contact
// @Produce json
// @Param   user_id query int true "ID владельца"
// @Success 200 {object} response.Payload "Контакты пользователя"
// @Failure 400 {object} response.Payload "Не передан user_id"
// @Router /api [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		log.Error("missing or invalid user_id")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("user_id requerido"))
		return
	}

	contacts, err := h.contacts.List(r.Context(), userID)
	if err != nil {
		log.Error("failed to list contacts", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	render.JSON(w, r, response.SuccessWith(map[string]any{
		"contacts": contacts,
	}))
}
