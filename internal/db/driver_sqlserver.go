package db

import (
	"fmt"
	"net/url"

	_ "github.com/microsoft/go-mssqldb"
)

const DriverSqlserver = "sqlserver"

func init() {
	connectionFactories[DriverSqlserver] = NewSqlserverDriverFactory()
}

func NewSqlserverDriverFactory() DriverFactory {
	return &sqlserverDriverFactory{}
}

type sqlserverDriverFactory struct{}

// GetDSN builds a sqlserver:// URL. Credentials pass through url.URL so any
// special characters in the username or password arrive percent-encoded.
func (m *sqlserverDriverFactory) GetDSN(settings Settings) string {
	dsn := url.URL{
		Scheme: DriverSqlserver,
		User:   url.UserPassword(settings.User, settings.Password),
		Host:   fmt.Sprintf("%s:%d", settings.Host, settings.Port),
	}

	qry := dsn.Query()
	qry.Set("database", settings.Database)
	for key, value := range settings.Params {
		qry.Set(key, value)
	}
	dsn.RawQuery = qry.Encode()

	return dsn.String()
}

func (m *sqlserverDriverFactory) DefaultPort() int {
	return 1433
}
