// Package app wires application dependencies for the CLI.
//
// LoadConfig reads .env and the environment; NewWire builds the session
// store, the auth service client and the orchestrator from the resulting
// Config, exposing them via the Wire struct for commands to use.
package app
