// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (form input, wire payloads, pipeline state) and
// contracts (interfaces) only.
package domain
