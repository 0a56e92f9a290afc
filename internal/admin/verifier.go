package admin

import (
	"context"
	"crypto/subtle"

	apperrors "meatshop/internal/errors"
)

// Verifier checks an admin credential. Implementations return an
// UnauthorizedError when the credential is rejected.
type Verifier interface {
	Verify(ctx context.Context, credential string) error
}

// StaticPINVerifier accepts a single shared PIN.
type StaticPINVerifier struct {
	pin []byte
}

func NewStaticPINVerifier(pin string) *StaticPINVerifier {
	return &StaticPINVerifier{pin: []byte(pin)}
}

func (v *StaticPINVerifier) Verify(_ context.Context, credential string) error {
	if len(v.pin) == 0 || subtle.ConstantTimeCompare(v.pin, []byte(credential)) != 1 {
		return apperrors.NewUnauthorizedError("Invalid PIN")
	}
	return nil
}
