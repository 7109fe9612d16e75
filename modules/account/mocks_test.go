package account_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lilknig/ember-api/pkg/auth"
)

// MockAuthenticator is a mock implementation of account.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Register(ctx context.Context, email, password, name string) (*auth.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (*auth.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

// MockOAuthFlow is a mock implementation of account.OAuthFlow.
type MockOAuthFlow struct {
	mock.Mock
}

func (m *MockOAuthFlow) AuthURL(ctx context.Context, providerName string) (string, error) {
	args := m.Called(ctx, providerName)
	return args.String(0), args.Error(1)
}

func (m *MockOAuthFlow) Authenticate(ctx context.Context, providerName, state, code string) (*auth.User, error) {
	args := m.Called(ctx, providerName, state, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}
