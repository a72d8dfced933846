package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/magabrotheeeer/health-companion/internal/client/api"
)

// ListContacts печатает контакты для экстренной связи.
func (a *App) ListContacts(ctx context.Context) error {
	user, _ := a.session.Current()

	contacts, err := a.api.ListContacts(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(a.out, "No se pudieron cargar los contactos:", err)
		return err
	}
	if len(contacts) == 0 {
		fmt.Fprintln(a.out, "No hay contactos registrados")
		return nil
	}

	for _, c := range contacts {
		relacion := ""
		if c.Relacion != nil {
			relacion = " (" + *c.Relacion + ")"
		}
		fmt.Fprintf(a.out, "#%d %s %s%s, %s, tel. %s\n",
			c.ID, c.Nombre, c.Apellidos, relacion, c.Email, c.Telefono)
	}
	return nil
}

// AddContact создаёт контакт для текущего пользователя.
func (a *App) AddContact(ctx context.Context) error {
	req, err := a.promptContact(api.ContactRequest{})
	if err != nil {
		return err
	}
	user, _ := a.session.Current()
	req.UserID = user.ID

	id, err := a.api.AddContact(ctx, *req)
	if err != nil {
		a.printContactError(err)
		return nil
	}
	fmt.Fprintf(a.out, "Contacto #%d agregado\n", id)
	return nil
}

// EditContact перезаписывает поля существующего контакта.
func (a *App) EditContact(ctx context.Context) error {
	id, err := a.promptContactID()
	if err != nil {
		return err
	}

	req, err := a.promptContact(api.ContactRequest{ID: id})
	if err != nil {
		return err
	}
	user, _ := a.session.Current()
	req.UserID = user.ID

	if err := a.api.UpdateContact(ctx, *req); err != nil {
		a.printContactError(err)
		return nil
	}
	fmt.Fprintln(a.out, "Contacto actualizado")
	return nil
}

// DeleteContact удаляет контакт по номеру. Сервер игнорирует номера
// чужих контактов, клиент в обоих случаях сообщает об успехе.
func (a *App) DeleteContact(ctx context.Context) error {
	id, err := a.promptContactID()
	if err != nil {
		return err
	}
	user, _ := a.session.Current()

	if err := a.api.DeleteContact(ctx, id, user.ID); err != nil {
		a.printContactError(err)
		return nil
	}
	fmt.Fprintln(a.out, "Contacto eliminado")
	return nil
}

func (a *App) promptContactID() (int, error) {
	line, err := promptLine(a.reader, a.out, "Numero de contacto")
	if err != nil {
		return 0, err
	}
	id, convErr := strconv.Atoi(line)
	if convErr != nil {
		fmt.Fprintln(a.out, "El numero de contacto debe ser un entero")
		return 0, convErr
	}
	return id, nil
}

func (a *App) promptContact(base api.ContactRequest) (*api.ContactRequest, error) {
	fields := []struct {
		prompt string
		target *string
	}{
		{"Nombre", &base.Nombre},
		{"Apellidos", &base.Apellidos},
		{"Email", &base.Email},
		{"Telefono", &base.Telefono},
	}
	for _, f := range fields {
		line, err := promptLine(a.reader, a.out, f.prompt)
		if err != nil {
			return nil, err
		}
		*f.target = line
	}

	relacion, err := promptLine(a.reader, a.out, "Relacion (opcional)")
	if err != nil {
		return nil, err
	}
	if relacion != "" {
		base.Relacion = &relacion
	}
	return &base, nil
}

func (a *App) printContactError(err error) {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(a.out, vErr.Message)
		return
	}
	fmt.Fprintln(a.out, "Operacion fallida:", err)
}
