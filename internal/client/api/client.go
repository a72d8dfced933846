// Package api реализует HTTP-клиент серверного API. Все операции ходят в
// одну точку входа и выбираются параметром action; ответы сервера
// преобразуются в типизированные ошибки по статус-коду.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var (
	// ErrConflict — email уже зарегистрирован.
	ErrConflict = errors.New("email already registered")
	// ErrUnauthorized — неверные учётные данные. Сервер не различает
	// неизвестный email и неверный пароль, клиент тоже.
	ErrUnauthorized = errors.New("invalid credentials")
	// ErrNotFound — запрошенная запись не существует.
	ErrNotFound = errors.New("not found")
)

// ValidationError — ошибка валидации, пришедшая с сервера (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Client — клиент серверного API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиент API. baseURL — адрес точки входа, например
// "http://localhost:8080/api".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do выполняет запрос action и декодирует успешный ответ в out.
func (c *Client) do(ctx context.Context, method, action string, query url.Values, body any, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("action", action)
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mapError превращает ответ с ошибкой в типизированную ошибку клиента.
func (c *Client) mapError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg := payload.Error
		if msg == "" {
			msg = "solicitud no valida"
		}
		return &ValidationError{Message: msg}
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	if payload.Error != "" {
		return fmt.Errorf("server error: %s", payload.Error)
	}
	return fmt.Errorf("unexpected status: %s", resp.Status)
}

// Register создаёт учётную запись и возвращает её ID.
// Запрос уходит ровно один раз, повторов при ошибке нет.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (int, error) {
	var out struct {
		UserID int `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "register", nil, req, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

// Login проверяет учётные данные и возвращает пользователя.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// GetUser возвращает профиль пользователя.
func (c *Client) GetUser(ctx context.Context, id int) (*Profile, error) {
	query := url.Values{"id": {strconv.Itoa(id)}}
	var out struct {
		User Profile `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "get_user", query, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateUser сохраняет полный набор полей профиля.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	return c.do(ctx, http.MethodPost, "update_user", nil, req, nil)
}

// AddContact создаёт контакт и возвращает его ID.
func (c *Client) AddContact(ctx context.Context, req ContactRequest) (int, error) {
	var out struct {
		ContactID int `json:"contact_id"`
	}
	if err := c.do(ctx, http.MethodPost, "add_contact", nil, req, &out); err != nil {
		return 0, err
	}
	return out.ContactID, nil
}

// UpdateContact сохраняет изменения контакта.
func (c *Client) UpdateContact(ctx context.Context, req ContactRequest) error {
	return c.do(ctx, http.MethodPost, "update_contact", nil, req, nil)
}

// DeleteContact удаляет контакт пользователя. Сервер фильтрует удаление
// по id и владельцу, чужой контакт остаётся на месте.
func (c *Client) DeleteContact(ctx context.Context, id, userID int) error {
	body := map[string]int{
		"id":      id,
		"user_id": userID,
	}
	return c.do(ctx, http.MethodPost, "delete_contact", nil, body, nil)
}

// ListContacts возвращает контакты пользователя.
func (c *Client) ListContacts(ctx context.Context, userID int) ([]Contact, error) {
	query := url.Values{"user_id": {strconv.Itoa(userID)}}
	var out struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodGet, "list_contacts", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}
