package authz_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lilknig/ember-api/pkg/auth"
)

// MockCredentialVerifier is a mock implementation of CredentialVerifier.
type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) Login(ctx context.Context, email, password string) (*auth.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}
