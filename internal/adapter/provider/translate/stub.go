package translate

import "context"

// Stub is the translator used when translation is disabled.
// It never has a translation to offer.
type Stub struct{}

// NewStub creates a no-op translator.
func NewStub() *Stub { return &Stub{} }

// Translate always reports that no translation is available.
func (s *Stub) Translate(_ context.Context, _, _, _ string) (string, error) {
	return "", ErrUnavailable
}
