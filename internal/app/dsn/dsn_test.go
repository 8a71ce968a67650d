package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "fueleu")
	t.Setenv("DB_NAME", "compliance")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("DB_PASS", "")

	dsn := FromEnv()
	assert.Contains(t, dsn, "host=db")
	assert.Contains(t, dsn, "dbname=compliance")
	assert.NotContains(t, dsn, "password=")

	t.Setenv("DB_PASS", "secret")
	assert.Contains(t, FromEnv(), "password=secret")
}
