// Package postgres provides the PostgreSQL implementation of the store
// interfaces, using database/sql with the pgx driver.
package postgres
