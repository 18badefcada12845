package auth

import "context"

// Claims es el usuario autenticado del panel admin.
type Claims struct {
	UserID string
	Email  string
	Role   string // rol que informa el proveedor de identidad ("" en modo dev)
}

// AuthVerifier resuelve un access token a Claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// VerifierFunc adapta una función a AuthVerifier.
type VerifierFunc func(ctx context.Context, token string) (Claims, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (Claims, error) {
	return f(ctx, token)
}
