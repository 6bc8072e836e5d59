// Package crypto holds the small hashing helpers shared across aniresfr.
package crypto
