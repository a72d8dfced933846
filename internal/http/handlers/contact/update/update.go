package update

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
	"github.com/magabrotheeeer/health-companion/internal/models"
)

// Request — изменённые данные контакта
type Request struct {
	ID        flexint.Int `json:"id" validate:"required"`
	UserID    flexint.Int `json:"user_id" validate:"required"`
	Nombre    string      `json:"nombre" validate:"required"`
	Apellidos string      `json:"apellidos" validate:"required"`
	Email     string      `json:"email" validate:"required"`
	Telefono  string      `json:"telefono" validate:"required"`
	Relacion  *string     `json:"relacion"`
}

// ContactUpdater описывает сервис сохранения контакта.
type ContactUpdater interface {
	Update(ctx context.Context, contact models.Contact) error
}

type Handler struct {
	log      *slog.Logger
	contacts ContactUpdater
	validate *validator.Validate
}

func New(log *slog.Logger, contacts ContactUpdater) *Handler {
	return &Handler{
		log:      log,
		contacts: contacts,
		validate: validate.New(),
	}
}

// ServeHTTP
// @Summary Изменение контакта пользователя
// @Tags contact
// @Accept  json
// @Produce json
// @Param   request body Request true "Данные контакта"
// @Success 200 {object} response.Payload "Контакт сохранён"
// @Failure 400 {object} response.Payload "Отсутствует обязательное поле"
// @Router /api [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.update"

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

	err := h.contacts.Update(r.Context(), models.Contact{
		ID:        int(req.ID),
		UserID:    int(req.UserID),
		Nombre:    req.Nombre,
		Apellidos: req.Apellidos,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Relacion:  req.Relacion,
	})
	if err != nil {
		log.Error("failed to update contact", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	log.Info("updated contact", slog.Int("contact_id", int(req.ID)))
	render.JSON(w, r, response.Success())
}
