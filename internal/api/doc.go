// Package api implements the HTTP handlers for the book service: login,
// health, and the authenticated book CRUD endpoints. Handlers compose
// the security screen, field validator, ID parser and list-query builder
// in front of the store, so no invalid request ever reaches SQL.
package api
