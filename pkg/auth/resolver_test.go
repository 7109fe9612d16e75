package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	profile := ProviderProfile{
		ExternalID:    "sub-123",
		Email:         "jane@example.com",
		EmailVerified: true,
		Name:          "Jane",
	}

	t.Run("first login creates a federated account", func(t *testing.T) {
		t.Parallel()

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(nil, ErrUserNotFound)
		store.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		user, err := NewResolver(store).Resolve(ctx, ProviderGoogle, profile)
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, ProviderGoogle, user.Provider)
		assert.Equal(t, "sub-123", user.ProviderExternalID)
		assert.Equal(t, RoleUser, user.Role)
		assert.Empty(t, user.PasswordHash)
		store.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("repeat login refreshes the name and keeps identity", func(t *testing.T) {
		t.Parallel()

		existing := &User{
			Email:              "jane@example.com",
			Provider:           ProviderGoogle,
			ProviderExternalID: "sub-123",
			Name:               "Old Name",
		}

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(existing, nil)
		store.On("UpdateUser", ctx, existing).Return(nil)

		user, err := NewResolver(store).Resolve(ctx, ProviderGoogle, profile)
		require.NoError(t, err)

		assert.Equal(t, existing.ID, user.ID)
		assert.Equal(t, ProviderGoogle, user.Provider)
		assert.Equal(t, "Jane", user.Name)
		assert.False(t, user.UpdatedAt.IsZero())
		store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("email owned by another provider conflicts without mutation", func(t *testing.T) {
		t.Parallel()

		existing := &User{
			Email:    "jane@example.com",
			Provider: ProviderLocal,
			Name:     "Jane Local",
		}

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(existing, nil)

		_, err := NewResolver(store).Resolve(ctx, ProviderGoogle, profile)
		require.Error(t, err)

		var conflict ProviderConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ProviderLocal, conflict.Provider, "conflict names the existing record's provider")
		assert.Equal(t, "Jane Local", existing.Name, "existing record untouched")
		store.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("blank provider email is rejected", func(t *testing.T) {
		t.Parallel()

		store := new(MockUserStore)
		_, err := NewResolver(store).Resolve(ctx, ProviderGoogle, ProviderProfile{ExternalID: "sub-123", Email: "   "})
		assert.ErrorIs(t, err, ErrProviderEmailMissing)
		store.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("create race falls back to the winner's record", func(t *testing.T) {
		t.Parallel()

		winner := &User{
			Email:              "jane@example.com",
			Provider:           ProviderGoogle,
			ProviderExternalID: "sub-123",
			Name:               "Jane W",
		}

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(nil, ErrUserNotFound).Once()
		store.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(ErrEmailAlreadyExists)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(winner, nil).Once()
		store.On("UpdateUser", ctx, winner).Return(nil)

		user, err := NewResolver(store).Resolve(ctx, ProviderGoogle, profile)
		require.NoError(t, err)

		assert.Equal(t, winner.ID, user.ID)
		assert.Equal(t, "Jane", user.Name, "loser still refreshes the name")
		store.AssertExpectations(t)
	})

	t.Run("create race against another provider still conflicts", func(t *testing.T) {
		t.Parallel()

		winner := &User{
			Email:    "jane@example.com",
			Provider: ProviderLocal,
		}

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(nil, ErrUserNotFound).Once()
		store.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(ErrEmailAlreadyExists)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(winner, nil).Once()

		_, err := NewResolver(store).Resolve(ctx, ProviderGoogle, profile)

		var conflict ProviderConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ProviderLocal, conflict.Provider)
	})

	t.Run("provider email is normalized before lookup", func(t *testing.T) {
		t.Parallel()

		existing := &User{
			Email:    "jane@example.com",
			Provider: ProviderGoogle,
		}

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(existing, nil)
		store.On("UpdateUser", ctx, existing).Return(nil)

		_, err := NewResolver(store).Resolve(ctx, ProviderGoogle, ProviderProfile{
			ExternalID: "sub-123",
			Email:      " Jane@Example.COM ",
			Name:       "Jane",
		})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("provider name is flattened before storage", func(t *testing.T) {
		t.Parallel()

		store := new(MockUserStore)
		store.On("GetUserByEmail", ctx, "jane@example.com").Return(nil, ErrUserNotFound)
		store.On("CreateUser", ctx, mock.AnythingOfType("*auth.User")).Return(nil)

		user, err := NewResolver(store).Resolve(ctx, ProviderGoogle, ProviderProfile{
			ExternalID: "sub-123",
			Email:      "jane@example.com",
			Name:       " Jane\nvan  Doe ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane van Doe", user.Name)
	})
}
