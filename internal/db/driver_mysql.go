package db

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const DriverMysql = "mysql"

func init() {
	connectionFactories[DriverMysql] = NewMysqlDriverFactory()
}

func NewMysqlDriverFactory() DriverFactory {
	return &mysqlDriverFactory{}
}

type mysqlDriverFactory struct{}

func (m *mysqlDriverFactory) GetDSN(settings Settings) string {
	cfg := mysql.NewConfig()
	cfg.User = settings.User
	cfg.Passwd = settings.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", settings.Host, settings.Port)
	cfg.DBName = settings.Database
	cfg.ParseTime = true
	if len(settings.Params) > 0 {
		cfg.Params = settings.Params
	}

	return cfg.FormatDSN()
}

func (m *mysqlDriverFactory) DefaultPort() int {
	return 3306
}
