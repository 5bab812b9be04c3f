package db

import (
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
)

const DriverPostgres = "postgres"

func init() {
	connectionFactories[DriverPostgres] = NewPostgresDriverFactory()
}

func NewPostgresDriverFactory() DriverFactory {
	return &postgresDriverFactory{}
}

type postgresDriverFactory struct{}

func (m *postgresDriverFactory) GetDSN(settings Settings) string {
	dsn := url.URL{
		Scheme: DriverPostgres,
		User:   url.UserPassword(settings.User, settings.Password),
		Host:   fmt.Sprintf("%s:%d", settings.Host, settings.Port),
		Path:   "/" + settings.Database,
	}

	qry := dsn.Query()
	qry.Set("sslmode", "disable")
	for key, value := range settings.Params {
		qry.Set(key, value)
	}
	dsn.RawQuery = qry.Encode()

	return dsn.String()
}

func (m *postgresDriverFactory) DefaultPort() int {
	return 5432
}
