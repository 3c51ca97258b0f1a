package database

import (
	"testing"

	"go-vet-clinic/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: "5432", User: "vet", Password: "secret", Name: "clinic"}

	assert.Equal(t,
		"host=db user=vet password=secret dbname=clinic port=5432 sslmode=disable TimeZone=Asia/Manila",
		DSN(cfg, "Asia/Manila"),
	)
	assert.Contains(t, DSN(cfg, ""), "TimeZone=UTC")
}
