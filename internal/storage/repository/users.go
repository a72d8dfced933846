package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/health-companion/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его ID.
//
// Перед вставкой выполняется быстрая проверка занятости email, но гарантию
// уникальности даёт только уникальный индекс: одновременные регистрации с
// одним email разрешаются ограничением базы, и обе ветки возвращают
// ErrEmailTaken проигравшему.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var existingID int
	err := s.DB.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = $1 LIMIT 1`, user.Email).Scan(&existingID)
	if err == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int
	query := `INSERT INTO users (nombre, apellidos, email, password_hash, fecha_nacimiento,
			      altura_cm, peso_kg, genero, condiciones, otro)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Nombre, user.Apellidos, user.Email, user.PasswordHash, user.FechaNacimiento,
		user.AlturaCm, user.PesoKg, user.Genero, user.Condiciones, user.Otro).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nombre, apellidos, email, password_hash, fecha_nacimiento,
			      altura_cm, peso_kg, genero, condiciones, otro
			  FROM users
			  WHERE email = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nombre, apellidos, email, password_hash, fecha_nacimiento,
			      altura_cm, peso_kg, genero, condiciones, otro
			  FROM users
			  WHERE id = $1`
	return s.scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

func (s *Storage) scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var fechaNacimiento time.Time
	var condiciones, otro sql.NullString

	if err := row.Scan(&u.ID, &u.Nombre, &u.Apellidos, &u.Email, &u.PasswordHash,
		&fechaNacimiento, &u.AlturaCm, &u.PesoKg, &u.Genero, &condiciones, &otro); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u.FechaNacimiento = fechaNacimiento.Format("2006-01-02")
	if condiciones.Valid {
		u.Condiciones = &condiciones.String
	}
	if otro.Valid {
		u.Otro = &otro.String
	}
	return u, nil
}

// UpdateUser обновляет все поля профиля пользователя одной командой.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) error {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET nombre = $1, apellidos = $2, email = $3, fecha_nacimiento = $4,
			      altura_cm = $5, peso_kg = $6, genero = $7, condiciones = $8, otro = $9
			  WHERE id = $10`
	// Нулевое число затронутых строк не считается ошибкой: обновление
	// несуществующего id завершается успешно, как и пустое обновление.
	_, err := s.DB.ExecContext(ctx, query,
		user.Nombre, user.Apellidos, user.Email, user.FechaNacimiento,
		user.AlturaCm, user.PesoKg, user.Genero, user.Condiciones, user.Otro, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
