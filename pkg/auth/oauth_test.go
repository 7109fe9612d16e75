package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOAuthService_AuthURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("generates url with stored one-time state", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)

		var issued string
		states := new(MockStateStore)
		states.On("Store", ctx, mock.AnythingOfType("string"), 5*time.Minute).Run(func(args mock.Arguments) {
			issued = args.String(1)
		}).Return(nil)
		adapter.On("AuthCodeURL", mock.AnythingOfType("string")).Return("https://provider.example/consent")

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)),
			WithAdapter(adapter),
			WithStateTTL(5*time.Minute),
		)

		url, err := svc.AuthURL(ctx, "google")
		require.NoError(t, err)
		assert.Equal(t, "https://provider.example/consent", url)
		assert.GreaterOrEqual(t, len(issued), 43, "32 random bytes base64-encoded")
		adapter.AssertCalled(t, "AuthCodeURL", issued)
	})

	t.Run("provider dispatch is case-insensitive", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)
		adapter.On("AuthCodeURL", mock.AnythingOfType("string")).Return("https://provider.example/consent")

		states := new(MockStateStore)
		states.On("Store", ctx, mock.Anything, mock.Anything).Return(nil)

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)), WithAdapter(adapter))

		_, err := svc.AuthURL(ctx, "GOOGLE")
		assert.NoError(t, err)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewOAuthService(new(MockStateStore), NewResolver(new(MockUserStore)))

		_, err := svc.AuthURL(ctx, "github")
		var unsupported UnsupportedProviderError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "github", unsupported.Name)
	})

	t.Run("state store failure aborts the flow", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)

		states := new(MockStateStore)
		states.On("Store", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)), WithAdapter(adapter))

		_, err := svc.AuthURL(ctx, "google")
		require.Error(t, err)
		adapter.AssertNotCalled(t, "AuthCodeURL", mock.Anything)
	})

	t.Run("consecutive states are unique", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)
		adapter.On("AuthCodeURL", mock.AnythingOfType("string")).Return("https://provider.example/consent")

		seen := make(map[string]bool)
		states := new(MockStateStore)
		states.On("Store", ctx, mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
			seen[args.String(1)] = true
		}).Return(nil)

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)), WithAdapter(adapter))

		for range 10 {
			_, err := svc.AuthURL(ctx, "google")
			require.NoError(t, err)
		}
		assert.Len(t, seen, 10)
	})
}

func TestOAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profile := ProviderProfile{
		ExternalID:    "sub-123",
		Email:         "jane@example.com",
		EmailVerified: true,
		Name:          "Jane",
	}

	t.Run("completes the callback into a user", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)
		adapter.On("ResolveProfile", ctx, "auth-code").Return(profile, nil)

		states := new(MockStateStore)
		states.On("Consume", ctx, "state-token").Return(nil)

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(nil, ErrUserNotFound)
		store.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		svc := NewOAuthService(states, NewResolver(store), WithAdapter(adapter))

		user, err := svc.Authenticate(ctx, "google", "state-token", "auth-code")
		require.NoError(t, err)
		assert.Equal(t, ProviderGoogle, user.Provider)
		assert.Equal(t, "jane@example.com", user.Email)
		states.AssertExpectations(t)
	})

	t.Run("unknown provider is rejected before state consumption", func(t *testing.T) {
		t.Parallel()

		states := new(MockStateStore)
		svc := NewOAuthService(states, NewResolver(new(MockUserStore)))

		_, err := svc.Authenticate(ctx, "github", "state-token", "auth-code")
		var unsupported UnsupportedProviderError
		require.ErrorAs(t, err, &unsupported)
		states.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything)
	})

	t.Run("missing or replayed state fails", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)

		states := new(MockStateStore)
		states.On("Consume", ctx, "stale-state").Return(ErrStateNotFound)

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)), WithAdapter(adapter))

		_, err := svc.Authenticate(ctx, "google", "stale-state", "auth-code")
		assert.ErrorIs(t, err, ErrInvalidState)
		adapter.AssertNotCalled(t, "ResolveProfile", mock.Anything, mock.Anything)
	})

	t.Run("adapter failures keep their sentinel identity", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)
		adapter.On("ResolveProfile", ctx, "bad-code").Return(ProviderProfile{}, ErrInvalidCode)

		states := new(MockStateStore)
		states.On("Consume", ctx, "state-token").Return(nil)

		svc := NewOAuthService(states, NewResolver(new(MockUserStore)), WithAdapter(adapter))

		_, err := svc.Authenticate(ctx, "google", "state-token", "bad-code")
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("resolver conflict propagates", func(t *testing.T) {
		t.Parallel()

		adapter := new(MockProviderAdapter)
		adapter.On("Provider").Return(ProviderGoogle)
		adapter.On("ResolveProfile", ctx, "auth-code").Return(profile, nil)

		states := new(MockStateStore)
		states.On("Consume", ctx, "state-token").Return(nil)

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(&User{
			Email:    "jane@example.com",
			Provider: ProviderLocal,
		}, nil)

		svc := NewOAuthService(states, NewResolver(store), WithAdapter(adapter))

		_, err := svc.Authenticate(ctx, "google", "state-token", "auth-code")
		var conflict ProviderConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ProviderLocal, conflict.Provider)
	})
}
