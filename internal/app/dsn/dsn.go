package dsn

import (
	"fmt"
	"os"
)

// FromEnv собирает строку подключения к Postgres из DB_* переменных
func FromEnv() string {
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	dbname := getenv("DB_NAME", "fueleu")
	sslmode := getenv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if pass := os.Getenv("DB_PASS"); pass != "" {
		dsn += fmt.Sprintf(" password=%s", pass)
	}
	return dsn
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
