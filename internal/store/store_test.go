package store

import (
	"context"
	"testing"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemoryKV())
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestInitializeSeedsOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	data, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, data.User, "user must not be seeded")
	assert.NotEmpty(t, data.Sessions)
	assert.NotEmpty(t, data.Requests)
	assert.NotEmpty(t, data.Problems)

	// Mutate, then re-initialize: existing keys must survive
	require.NoError(t, s.Write(ctx, Partial{Sessions: []models.Session{}}))
	require.NoError(t, s.Initialize(ctx))

	data, err = s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Sessions, "initialize must not overwrite existing data")
}

func TestPartialWriteLeavesOtherKeysIntact(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	before, err := s.Read(ctx)
	require.NoError(t, err)

	user := &models.User{ID: "u1", Name: "Alex", Email: "alex@example.com", Role: models.RoleMentee}
	require.NoError(t, s.Write(ctx, Partial{User: user}))

	after, err := s.Read(ctx)
	require.NoError(t, err)
	require.NotNil(t, after.User)
	assert.Equal(t, "Alex", after.User.Name)
	assert.Equal(t, before.Sessions, after.Sessions)
	assert.Equal(t, before.Requests, after.Requests)
}

func TestUpdateReadModifyWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.Update(ctx, func(data *StoredData) (Partial, error) {
		for i := range data.Requests {
			if data.Requests[i].Status == models.RequestStatusPending {
				data.Requests[i].Status = models.RequestStatusAccepted
			}
		}
		return Partial{Requests: data.Requests}, nil
	})
	require.NoError(t, err)

	data, err := s.Read(ctx)
	require.NoError(t, err)
	for _, r := range data.Requests {
		assert.NotEqual(t, models.RequestStatusPending, r.Status)
	}
}

func TestClearWipesEverything(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Clear(ctx))

	data, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, data.User)
	assert.Empty(t, data.Sessions)
	assert.Empty(t, data.Requests)
}

func TestCorruptDocumentFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := New(kv)
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, kv.Set(ctx, keySessions, []byte("{not json")))

	data, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Sessions)
	assert.NotEmpty(t, data.Requests)
}
