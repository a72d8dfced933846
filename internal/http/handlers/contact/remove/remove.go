package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/flexint"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/lib/validate"
)

// Request — идентификатор контакта и его владельца
type Request struct {
	ID     flexint.Int `json:"id" validate:"required"`
	UserID flexint.Int `json:"user_id" validate:"required"`
}

// ContactRemover описывает сервис удаления контакта.
type ContactRemover interface {
	Remove(ctx context.Context, id, userID int) error
}

type Handler struct {
	log      *slog.Logger
	contacts ContactRemover
	validate *validator.Validate
}

func New(log *slog.Logger, contacts ContactRemover) *Handler {
	return &Handler{
		log:      log,
		contacts: contacts,
		validate: validate.New(),
	}
}

// ServeHTTP
// @Summary Удаление контакта пользователя
// @Tags contact
// @Accept  json
// @Produce json
// @Param   request body Request true "id контакта и user_id владельца"
// @Success 200 {object} response.Payload "Контакт удалён"
// @Failure 400 {object} response.Payload "Отсутствует обязательное поле"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.contacts.Remove(r.Context(), int(req.ID), int(req.UserID)); err != nil {
		log.Error("failed to remove contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("removed contact", slog.Int("contact_id", int(req.ID)))
	render.JSON(w, r, response.Success())
}
