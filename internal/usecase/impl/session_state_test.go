package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepository "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStateWithMockStore(t *testing.T) (*SessionState, *mockRepository.MockLocalStore, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	store := mockRepository.NewMockLocalStore(t)

	return NewSessionState(store, newTestConfig(), logger), store, &logs
}

func TestSessionState_LoadSnapshot_SwallowsStorageError(t *testing.T) {
	state, store, logs := newStateWithMockStore(t)

	store.EXPECT().Get(mock.Anything, repository.KeyAuthState).
		Return("", false, domainerrors.NewStorageError("get", repository.KeyAuthState, context.DeadlineExceeded)).Once()

	assert.Nil(t, state.loadSnapshot(context.Background()))
	assert.Contains(t, logs.String(), "Failed to read auth snapshot")
}

func TestSessionState_SaveSnapshot_ReportsStorageError(t *testing.T) {
	state, store, logs := newStateWithMockStore(t)
	storageErr := domainerrors.NewStorageError("set", repository.KeyAuthState, context.DeadlineExceeded)

	store.EXPECT().Set(mock.Anything, repository.KeyAuthState, mock.Anything).Return(storageErr).Once()

	err := state.saveSnapshot(context.Background(), &entity.User{ID: "u1", Name: "Ada"})

	require.ErrorIs(t, err, storageErr)
	assert.Contains(t, logs.String(), "Failed to persist auth snapshot")
}

func TestSessionState_Snapshot_FreshThenStale(t *testing.T) {
	state, store, _ := newStateWithMockStore(t)
	saved := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	state.now = func() time.Time { return saved }

	var stored string
	store.EXPECT().Set(mock.Anything, repository.KeyAuthState, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, value string) error {
			stored = value

			return nil
		}).Once()
	require.NoError(t, state.saveSnapshot(context.Background(), &entity.User{ID: "u1", Name: "Ada"}))

	store.EXPECT().Get(mock.Anything, repository.KeyAuthState).
		RunAndReturn(func(context.Context, string) (string, bool, error) {
			return stored, true, nil
		}).Twice()

	state.now = func() time.Time { return saved.Add(30 * time.Minute) }
	snapshot := state.loadSnapshot(context.Background())
	require.NotNil(t, snapshot)
	assert.Equal(t, "u1", snapshot.User.ID)

	state.now = func() time.Time { return saved.Add(2 * time.Hour) }
	assert.Nil(t, state.loadSnapshot(context.Background()))
}

func TestSessionState_Expire_ClearsSessionWhenStoreFails(t *testing.T) {
	state, store, _ := newStateWithMockStore(t)
	loginAs(state, "u1")

	store.EXPECT().Remove(mock.Anything, repository.KeyAuthState).
		Return(domainerrors.NewStorageError("remove", repository.KeyAuthState, context.DeadlineExceeded)).Once()

	state.Expire(context.Background())

	current := state.Current()
	assert.Equal(t, entity.SessionAnonymous, current.State)
	assert.Equal(t, domainerrors.ErrSessionExpired.Message(), current.Error)
	assert.Empty(t, state.CurrentUserID())
}
