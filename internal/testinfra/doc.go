// Package testinfra holds the climate fixture shared by gateway, use case and controller tests:
// the measurement/station schema, a deterministic data set and helpers to load it into SQLite.
package testinfra
