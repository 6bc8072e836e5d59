// Package commands defines the aniresfr CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login      Sign in with an organisation email and password
//   - register   Register a new organisation
//   - logout     Forget the stored session token
//   - status     Report whether a session token is stored
//
// # Implementation
//
// The root command loads configuration from .env, the environment and flags,
// then builds the dependency graph (session store, auth client, orchestrator)
// before any subcommand runs. The terminal plays the part of the form: error
// messages go to stderr and button state changes are printed as they happen.
package commands
