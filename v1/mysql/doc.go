// Package mysql provides the MySQL connection adapter for dbkit.
//
// It has the same shape and lifecycle as the postgres adapter: Connect opens
// a pooled GORM connection and verifies it with a SELECT 1 probe, Disconnect
// is idempotent, TestConnection never fails loudly, and the live handle is
// only reachable between a successful Connect and a Disconnect.
//
// Unlike PostgreSQL, the go-sql-driver does not accept URI-style connection
// strings, so BuildDSN produces the driver-native form
//
//	user:password@tcp(host:port)/dbname
//
// with tls=true appended when SSL is requested. A prebuilt Connection.URL
// still wins verbatim and must already be in driver-native form.
package mysql
