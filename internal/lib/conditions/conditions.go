// Package conditions кодирует и декодирует список медицинских состояний
// пользователя. В базе список хранится одной строкой в формате JSON,
// наружу отдаётся как массив строк.
package conditions

import (
	"encoding/json"
	"fmt"
)

// Encode сериализует список состояний в JSON-строку для хранения.
// Для nil-списка возвращает nil: колонка condiciones допускает NULL.
func Encode(items []string) (*string, error) {
	const op = "conditions.Encode"
	if items == nil {
		return nil, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s := string(data)
	return &s, nil
}

// Decode разбирает сохранённую строку обратно в список состояний.
// Пустое или отсутствующее значение — пустой список. Если строка не
// разбирается как JSON-массив, возвращается исходная строка как есть:
// повреждённые данные отдаются без изменений, а не прячутся за ошибкой.
func Decode(raw *string) any {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return *raw
	}
	return items
}
