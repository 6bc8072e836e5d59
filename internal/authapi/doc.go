// Package authapi provides an HTTP implementation of the domain.AuthClient
// interface used by aniresfr.
//
// The remote identity service exposes two JSON endpoints:
//   - POST /login/       {email, password}           -> {token}
//   - POST /register/ngo  registration payload        -> {token}
//
// Non-2xx statuses are returned as *ServerError carrying the status code and,
// when the body has a string "error" field, the message the service reported.
// Transport and decode failures are wrapped and returned as-is. Every request
// carries the attempt's request ID in the X-Request-ID header when one is set
// on the context.
package authapi
