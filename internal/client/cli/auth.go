package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
	"github.com/magabrotheeeer/health-companion/internal/client/session"
)

// Login запрашивает учётные данные и открывает сессию.
func (a *App) Login(ctx context.Context) error {
	email, err := promptLine(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out, "Contrasena")
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Credenciales invalidas")
			return nil
		}
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(a.out, vErr.Message)
			return nil
		}
		fmt.Fprintln(a.out, "No se pudo iniciar sesion:", err)
		return err
	}

	a.session.Set(session.User{
		ID:        user.ID,
		Nombre:    user.Nombre,
		Apellidos: user.Apellidos,
		Email:     user.Email,
	})
	fmt.Fprintf(a.out, "Bienvenido, %s\n", user.Nombre)
	return nil
}

// Logout завершает сессию. Команда безвредна и без активной сессии.
func (a *App) Logout(_ context.Context) error {
	a.session.Clear()
	fmt.Fprintln(a.out, "Sesion cerrada")
	return nil
}
