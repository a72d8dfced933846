package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/health-companion/internal/http/response"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	accountservice "github.com/magabrotheeeer/health-companion/internal/services/account"
	"github.com/magabrotheeeer/health-companion/internal/storage/repository"
)

// ProfileGetter описывает сервис чтения профиля.
type ProfileGetter interface {
	Get(ctx context.Context, id int) (*accountservice.UserProfile, error)
}

type Handler struct {
	log     *slog.Logger
	account ProfileGetter
}

func New(log *slog.Logger, account ProfileGetter) *Handler {
	return &Handler{
		log:     log,
		account: account,
	}
}

// ServeHTTP
// @Summary Чтение профиля пользователя
// @Tags user
// @Produce json
// @Param   id query int true "ID пользователя"
// @Success 200 {object} response.Payload "Профиль пользователя"
// @Failure 400 {object} response.Payload "Не передан id"
// @Failure 404 {object} response.Payload "Пользователь не найден"
// @Router /api [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		log.Error("missing or invalid id")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("id requerido"))
		return
	}

	profile, err := h.account.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.Int("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Usuario no encontrado"))
			return
		}
		log.Error("failed to load user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerError(err.Error()))
		return
	}

	render.JSON(w, r, response.SuccessWith(map[string]any{
		"user": profile,
	}))
}
