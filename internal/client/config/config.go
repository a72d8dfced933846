// Package config загружает настройки консольного клиента.
package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config настройки клиента. Заполняются из переменных окружения,
// для локального запуска достаточно значений по умолчанию.
type Config struct {
	ServerURL      string        `env:"HC_SERVER_URL" env-default:"http://localhost:8080/api"`
	RequestTimeout time.Duration `env:"HC_REQUEST_TIMEOUT" env-default:"10s"`
}

// MustLoad читает настройки из окружения и завершает процесс при ошибке.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read client config: %s", err)
	}
	return &cfg
}
