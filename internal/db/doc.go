// Package db opens sqlx connections to the warehouses extraction reads from.
//
// Each supported engine contributes a DriverFactory that knows how to turn
// Settings into its DSN. Factories register themselves in init, keyed by the
// driver name used in the settings file:
//
//	sqlserver  github.com/microsoft/go-mssqldb
//	mysql      github.com/go-sql-driver/mysql
//	postgres   github.com/lib/pq
//	sqlite     modernc.org/sqlite
//
// Credentials for the URL-shaped DSNs go through net/url so passwords with
// reserved characters are percent-encoded rather than corrupting the
// connection string.
//
// Open verifies connectivity with a ping and pins the pool to one connection;
// the extractor reads views sequentially over a single session.
package db
