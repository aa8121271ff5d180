// Package validation implements the request validation pipeline for book
// payloads: the security screen that runs first, the ordered field
// validator, and the ISBN format check.
//
// Both the screen and the validator operate on the decoded JSON payload as
// a map rather than a typed struct. That is deliberate: the API reports
// the actual JSON kind of a mis-typed field, aggregates all missing
// required fields into a single outcome, and re-validates merged payloads
// on partial updates, none of which a struct-tag validator can express.
package validation
