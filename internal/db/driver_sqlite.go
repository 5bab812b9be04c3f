package db

import (
	"net/url"

	_ "modernc.org/sqlite"
)

const DriverSqlite = "sqlite"

func init() {
	connectionFactories[DriverSqlite] = NewSqliteDriverFactory()
}

func NewSqliteDriverFactory() DriverFactory {
	return &sqliteDriverFactory{}
}

type sqliteDriverFactory struct{}

// GetDSN treats the host as the database file path, so settings carry
// warehouse files and :memory: databases the same way as networked engines.
func (m *sqliteDriverFactory) GetDSN(settings Settings) string {
	path := settings.Host
	if path == "" {
		path = settings.Database
	}

	if len(settings.Params) == 0 {
		return path
	}

	qry := url.Values{}
	for key, value := range settings.Params {
		qry.Set(key, value)
	}

	return path + "?" + qry.Encode()
}

func (m *sqliteDriverFactory) DefaultPort() int {
	return 0
}
