package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// commands описывает командную поверхность REPL. Реальный App её
// реализует, тесты подставляют заглушку.
type commands interface {
	isLoggedIn() bool
	RegisterUser(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ListContacts(ctx context.Context) error
	AddContact(ctx context.Context) error
	EditContact(ctx context.Context) error
	DeleteContact(ctx context.Context) error
}

// runREPL читает команды построчно и вызывает обработчики. Ошибки
// обработчики печатают сами, цикл на них не прерывается. Команды,
// требующие сессии, без входа недоступны.
func runREPL(ctx context.Context, c commands, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "[%s] > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "ayuda", "help":
			printHelp(out, c.isLoggedIn())

		case "registro":
			_ = c.RegisterUser(ctx)

		case "entrar":
			_ = c.Login(ctx)

		case "salir":
			_ = c.Logout(ctx)

		case "perfil":
			requireSession(ctx, c, out, c.ShowProfile)

		case "editar":
			requireSession(ctx, c, out, c.EditProfile)

		case "contactos":
			requireSession(ctx, c, out, c.ListContacts)

		case "agregar":
			requireSession(ctx, c, out, c.AddContact)

		case "modificar":
			requireSession(ctx, c, out, c.EditContact)

		case "eliminar":
			requireSession(ctx, c, out, c.DeleteContact)

		case "fin", "exit", "quit":
			fmt.Fprintln(out, "Hasta pronto")
			return

		default:
			fmt.Fprintln(out, "Comando desconocido:", cmd)
		}
	}
}

func requireSession(ctx context.Context, c commands, out io.Writer, fn func(context.Context) error) {
	if !c.isLoggedIn() {
		fmt.Fprintln(out, "Primero inicia sesion con: entrar")
		return
	}
	_ = fn(ctx)
}

func printHelp(out io.Writer, loggedIn bool) {
	if loggedIn {
		fmt.Fprintln(out, "Comandos: perfil, editar, contactos, agregar, modificar, eliminar, salir, fin")
		return
	}
	fmt.Fprintln(out, "Comandos: registro, entrar, fin")
}
