package interfaces

import (
	"context"

	domaintypes "aniresfr/internal/domain/types"
)

// AuthClient is how we talk to the remote identity service.
//
// Both calls return the issued token on a 2xx response carrying one, and an
// error otherwise.
type AuthClient interface {
	Login(ctx context.Context, payload domaintypes.LoginPayload) (domaintypes.SessionToken, error)
	RegisterNGO(
		ctx context.Context,
		payload domaintypes.RegistrationPayload,
	) (domaintypes.SessionToken, error)
}
