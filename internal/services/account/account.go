// Package services содержит бизнес-логику работы с учётными записями:
// регистрацию, вход, чтение и обновление профиля с кешированием.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/health-companion/internal/lib/conditions"
	"github.com/magabrotheeeer/health-companion/internal/lib/password"
	"github.com/magabrotheeeer/health-companion/internal/lib/sl"
	"github.com/magabrotheeeer/health-companion/internal/models"
	"github.com/magabrotheeeer/health-companion/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Ошибка одна на оба случая: ответ не раскрывает, существует ли учётная запись.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int, error)
	// GetUserByEmail возвращает пользователя по email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// UpdateUser обновляет все поля профиля.
	UpdateUser(ctx context.Context, user models.User) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// RegisterEntry — данные новой учётной записи, уже прошедшие валидацию запроса.
type RegisterEntry struct {
	Nombre          string
	Apellidos       string
	Email           string
	Password        string
	FechaNacimiento string
	AlturaCm        int
	PesoKg          int
	Genero          string
	Condiciones     []string
	Otro            *string
}

// UpdateEntry — полный набор полей профиля для сохранения.
type UpdateEntry struct {
	ID              int
	Nombre          string
	Apellidos       string
	Email           string
	FechaNacimiento string
	AlturaCm        int
	PesoKg          int
	Genero          string
	Condiciones     []string
	Otro            *string
}

// UserProfile — профиль пользователя в том виде, в котором он уходит клиенту.
// Condiciones — либо массив строк, либо исходная строка, если сохранённое
// значение не разбирается как JSON.
type UserProfile struct {
	ID              int     `json:"id"`
	Nombre          string  `json:"nombre"`
	Apellidos       string  `json:"apellidos"`
	Email           string  `json:"email"`
	FechaNacimiento string  `json:"fecha_nacimiento"`
	AlturaCm        int     `json:"altura_cm"`
	PesoKg          int     `json:"peso_kg"`
	Genero          string  `json:"genero"`
	Condiciones     any     `json:"condiciones"`
	Otro            *string `json:"otro"`
}

// AccountService реализует бизнес-логику учётных записей.
type AccountService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewAccountService создает новый экземпляр AccountService.
func NewAccountService(repo UserRepository, cache Cache, log *slog.Logger) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Register создаёт новую учётную запись и возвращает её ID.
// Email приводится к нижнему регистру перед записью, пароль хэшируется.
func (s *AccountService) Register(ctx context.Context, entry RegisterEntry) (int, error) {
	hash, err := password.GetHash(entry.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	encoded, err := conditions.Encode(entry.Condiciones)
	if err != nil {
		return 0, fmt.Errorf("failed to encode condiciones: %w", err)
	}

	user := models.User{
		Nombre:          strings.TrimSpace(entry.Nombre),
		Apellidos:       strings.TrimSpace(entry.Apellidos),
		Email:           strings.ToLower(strings.TrimSpace(entry.Email)),
		PasswordHash:    hash,
		FechaNacimiento: entry.FechaNacimiento,
		AlturaCm:        entry.AlturaCm,
		PesoKg:          entry.PesoKg,
		Genero:          entry.Genero,
		Condiciones:     encoded,
		Otro:            entry.Otro,
	}

	id, err := s.repo.RegisterUser(ctx, user)
	if err != nil {
		return 0, err
	}

	s.log.Info("registered new user", slog.Int("id", id))
	return id, nil
}

// Login проверяет учётные данные и возвращает пользователя.
// Неизвестный email и неверный пароль дают один и тот же ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, pass string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.CompareHash(user.PasswordHash, pass); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get возвращает профиль пользователя, используя кеш или репозиторий.
func (s *AccountService) Get(ctx context.Context, id int) (*UserProfile, error) {
	cacheKey := fmt.Sprintf("user:%d", id)
	var cached UserProfile
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read user from cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{
		ID:              user.ID,
		Nombre:          user.Nombre,
		Apellidos:       user.Apellidos,
		Email:           user.Email,
		FechaNacimiento: user.FechaNacimiento,
		AlturaCm:        user.AlturaCm,
		PesoKg:          user.PesoKg,
		Genero:          user.Genero,
		Condiciones:     conditions.Decode(user.Condiciones),
		Otro:            user.Otro,
	}

	if err := s.cache.Set(ctx, cacheKey, profile, time.Hour); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), sl.Err(err))
	}
	return profile, nil
}

// Update сохраняет полный набор полей профиля и инвалидирует кеш.
func (s *AccountService) Update(ctx context.Context, entry UpdateEntry) error {
	encoded, err := conditions.Encode(entry.Condiciones)
	if err != nil {
		return fmt.Errorf("failed to encode condiciones: %w", err)
	}

	user := models.User{
		ID:              entry.ID,
		Nombre:          strings.TrimSpace(entry.Nombre),
		Apellidos:       strings.TrimSpace(entry.Apellidos),
		Email:           strings.ToLower(strings.TrimSpace(entry.Email)),
		FechaNacimiento: entry.FechaNacimiento,
		AlturaCm:        entry.AlturaCm,
		PesoKg:          entry.PesoKg,
		Genero:          entry.Genero,
		Condiciones:     encoded,
		Otro:            entry.Otro,
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf("user:%d", entry.ID)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate user cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}
