// Package flexint содержит целочисленный тип, который при разборе JSON
// принимает и число, и строку с числом. Мобильный клиент отправляет рост и
// вес как строки на шаге регистрации и как числа при сохранении профиля.
package flexint

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Int разбирается и из JSON-числа, и из JSON-строки с числом.
type Int int

// UnmarshalJSON реализует json.Unmarshaler.
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*i = Int(n)
	return nil
}

// MarshalJSON реализует json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}
