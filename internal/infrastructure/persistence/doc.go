// Package persistence provides the GORM repositories of the admin backend.
// Every repository converts between domain entities and the models package,
// validates entities before writing, and translates driver errors into the
// apperr sentinels.
package persistence
