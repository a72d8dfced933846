package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/health-companion/internal/models"
)

// CreateContact сохраняет новый контакт пользователя и возвращает его ID.
func (s *Storage) CreateContact(ctx context.Context, contact models.Contact) (int, error) {
	const op = "storage.CreateContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO contacts (user_id, nombre, apellidos, email, telefono, relacion)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		contact.UserID, contact.Nombre, contact.Apellidos, contact.Email,
		contact.Telefono, contact.Relacion).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateContact обновляет контакт, отфильтрованный по id и владельцу.
// Чужой контакт фильтр не пропускает: запрос затрагивает ноль строк.
func (s *Storage) UpdateContact(ctx context.Context, contact models.Contact) (int64, error) {
	const op = "storage.UpdateContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contacts
			  SET nombre = $1, apellidos = $2, email = $3, telefono = $4, relacion = $5
			  WHERE id = $6 AND user_id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		contact.Nombre, contact.Apellidos, contact.Email, contact.Telefono,
		contact.Relacion, contact.ID, contact.UserID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

// RemoveContact удаляет контакт по id и владельцу.
func (s *Storage) RemoveContact(ctx context.Context, id, userID int) (int64, error) {
	const op = "storage.RemoveContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

// ListContacts возвращает контакты пользователя, новые первыми.
func (s *Storage) ListContacts(ctx context.Context, userID int) ([]*models.Contact, error) {
	const op = "storage.ListContacts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, nombre, apellidos, email, telefono, relacion, created_at
			  FROM contacts
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := []*models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err = rows.Scan(&c.ID, &c.UserID, &c.Nombre, &c.Apellidos, &c.Email,
			&c.Telefono, &c.Relacion, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
