// Package services содержит бизнес-логику работы с контактами пользователя.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/health-companion/internal/models"
)

// ContactRepository определяет методы для работы с контактами в хранилище.
type ContactRepository interface {
	// CreateContact сохраняет новый контакт и возвращает его ID.
	CreateContact(ctx context.Context, contact models.Contact) (int, error)
	// UpdateContact обновляет контакт по id и владельцу, возвращает число затронутых строк.
	UpdateContact(ctx context.Context, contact models.Contact) (int64, error)
	// RemoveContact удаляет контакт по id и владельцу, возвращает число затронутых строк.
	RemoveContact(ctx context.Context, id, userID int) (int64, error)
	// ListContacts возвращает контакты пользователя.
	ListContacts(ctx context.Context, userID int) ([]*models.Contact, error)
}

// ContactService реализует бизнес-логику контактов.
type ContactService struct {
	repo ContactRepository
	log  *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(repo ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{
		repo: repo,
		log:  log,
	}
}

// Add создаёт контакт для пользователя и возвращает его ID.
func (s *ContactService) Add(ctx context.Context, contact models.Contact) (int, error) {
	id, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new contact",
		slog.Int("id", id), slog.Int("user_id", contact.UserID))
	return id, nil
}

// Update сохраняет изменения контакта. Запись чужого владельца фильтр
// не пропускает, операция завершается без изменений и без ошибки.
func (s *ContactService) Update(ctx context.Context, contact models.Contact) error {
	rows, err := s.repo.UpdateContact(ctx, contact)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.log.Info("contact update matched no rows",
			slog.Int("id", contact.ID), slog.Int("user_id", contact.UserID))
	}
	return nil
}

// Remove удаляет контакт пользователя. Несовпадение владельца — no-op.
func (s *ContactService) Remove(ctx context.Context, id, userID int) error {
	rows, err := s.repo.RemoveContact(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.log.Info("contact delete matched no rows",
			slog.Int("id", id), slog.Int("user_id", userID))
	}
	return nil
}

// List возвращает контакты пользователя, новые первыми.
func (s *ContactService) List(ctx context.Context, userID int) ([]*models.Contact, error) {
	return s.repo.ListContacts(ctx, userID)
}
