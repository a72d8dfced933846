package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword подменяется в тестах, чтобы не трогать терминал.
var readPassword = term.ReadPassword

// promptLine печатает приглашение и читает одну строку ввода.
// Завершающий перевод строки отбрасывается. EOF после частичной
// строки возвращает прочитанное.
func promptLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword читает пароль без эха.
func promptPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// promptList читает строки до пустой и возвращает их списком.
// Используется для перечней вроде хронических заболеваний.
func promptList(reader *bufio.Reader, w io.Writer, prompt string) ([]string, error) {
	if _, err := fmt.Fprint(w, prompt+" (linea vacia para terminar)\n"); err != nil {
		return nil, err
	}

	items := make([]string, 0)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err != nil {
				return items, nil
			}
			break
		}
		items = append(items, strings.TrimSpace(line))
		if err != nil {
			break
		}
	}
	return items, nil
}
