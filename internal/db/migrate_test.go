package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreAnnotated(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		body, err := fs.ReadFile(migrations, migrationsDir+"/"+e.Name())
		require.NoError(t, err)

		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestInitMigrationCreatesTables(t *testing.T) {
	body, err := fs.ReadFile(migrations, migrationsDir+"/00001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "camps", "registrations", "feedback", "transactions", "banners"} {
		assert.True(t, strings.Contains(string(body), "public."+table+" ("), table)
	}
}
