package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDriverFactory(t *testing.T) {
	t.Run("registered drivers resolve", func(t *testing.T) {
		for _, name := range []string{DriverMysql, DriverPostgres, DriverSqlserver, DriverSqlite} {
			factory, err := GetDriverFactory(name)
			require.NoError(t, err, name)
			assert.NotNil(t, factory, name)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		factory, err := GetDriverFactory("oracle")
		require.Error(t, err)
		assert.Nil(t, factory)
		assert.Contains(t, err.Error(), "no driver factory defined for oracle")
	})
}

func TestSupportedDrivers(t *testing.T) {
	assert.Equal(t, []string{"mysql", "postgres", "sqlite", "sqlserver"}, SupportedDrivers())
}
