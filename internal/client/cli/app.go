// Package cli реализует консольный интерфейс клиента: REPL с командами
// регистрации, входа, профиля и контактов для экстренной связи.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/profile"
	"github.com/magabrotheeeer/health-companion/internal/client/session"
)

// companionAPI перечисляет операции серверного API, используемые
// консолью. *api.Client реализует интерфейс целиком.
type companionAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (int, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	GetUser(ctx context.Context, id int) (*api.Profile, error)
	UpdateUser(ctx context.Context, req api.UpdateUserRequest) error
	AddContact(ctx context.Context, req api.ContactRequest) (int, error)
	UpdateContact(ctx context.Context, req api.ContactRequest) error
	DeleteContact(ctx context.Context, id, userID int) error
	ListContacts(ctx context.Context, userID int) ([]api.Contact, error)
}

// App связывает API, сессию и редактор профиля с вводом-выводом консоли.
type App struct {
	api     companionAPI
	session *session.Store
	editor  *profile.Editor
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp создаёт приложение консоли поверх клиента API.
func NewApp(client *api.Client) *App {
	store := session.NewStore()
	return &App{
		api:     client,
		session: store,
		editor:  profile.NewEditor(client, store),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run запускает цикл команд до выхода пользователя или отмены контекста.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

// status возвращает строку приглашения: почту вошедшего пользователя
// или пометку о её отсутствии.
func (a *App) status() string {
	user, ok := a.session.Current()
	if !ok {
		return "sin sesion"
	}
	return user.Email
}
