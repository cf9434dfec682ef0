package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestAppointmentForeignKeys(t *testing.T) {
	body, err := fs.ReadFile(migrations, migrationsDir+"/00001_init.sql")
	require.NoError(t, err)
	sql := string(body)

	assert.True(t, strings.Contains(sql, "REFERENCES clients (id) ON UPDATE CASCADE ON DELETE CASCADE"))
	assert.True(t, strings.Contains(sql, "REFERENCES barbers (id) ON UPDATE CASCADE ON DELETE RESTRICT"))
	assert.True(t, strings.Contains(sql, "REFERENCES services (id) ON UPDATE CASCADE ON DELETE RESTRICT"))
}
