package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chenyahui/gin-cache/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	deletedPatterns []string
	cleared         int

	patternErr error
	clearErr   error
}

func (f *fakeStore) Get(string, interface{}) error                { return persist.ErrCacheMiss }
func (f *fakeStore) Set(string, interface{}, time.Duration) error { return nil }
func (f *fakeStore) Delete(string) error                          { return nil }

func (f *fakeStore) DeletePattern(_ context.Context, pattern string) error {
	f.deletedPatterns = append(f.deletedPatterns, pattern)
	return f.patternErr
}

func (f *fakeStore) Clear(context.Context) error {
	f.cleared++
	return f.clearErr
}

func TestInvalidatorDeletesBothNamespaces(t *testing.T) {
	store := &fakeStore{}

	NewInvalidator(store).InvalidateApplications(context.Background())

	assert.Equal(t, []string{ListKeyPrefix + "*", DetailKeyPrefix + "*"}, store.deletedPatterns)
	assert.Zero(t, store.cleared)
}

func TestInvalidatorFallsBackToClear(t *testing.T) {
	store := &fakeStore{patternErr: ErrPatternUnsupported}

	NewInvalidator(store).InvalidateApplications(context.Background())

	// One failed pattern attempt, then a single full clear
	assert.Equal(t, []string{ListKeyPrefix + "*"}, store.deletedPatterns)
	assert.Equal(t, 1, store.cleared)
}

func TestInvalidatorClearsAfterPatternFailure(t *testing.T) {
	store := &fakeStore{patternErr: errors.New("backend down")}

	NewInvalidator(store).InvalidateApplications(context.Background())

	assert.Equal(t, 1, store.cleared)
}

func TestInvalidatorSwallowsEverything(t *testing.T) {
	store := &fakeStore{patternErr: errors.New("down"), clearErr: errors.New("still down")}

	assert.NotPanics(t, func() {
		NewInvalidator(store).InvalidateApplications(context.Background())
	})
}

func TestInvalidatorNilSafe(t *testing.T) {
	var i *Invalidator

	assert.NotPanics(t, func() {
		i.InvalidateApplications(context.Background())
	})

	assert.NotPanics(t, func() {
		NewInvalidator(nil).InvalidateApplications(context.Background())
	})
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	type payload struct {
		Status int    `json:"status"`
		Data   []byte `json:"data"`
	}

	require.NoError(t, store.Set("k", payload{Status: 200, Data: []byte("hello")}, time.Minute))

	var got payload
	require.NoError(t, store.Get("k", &got))
	assert.Equal(t, 200, got.Status)
	assert.Equal(t, []byte("hello"), got.Data)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	var got string
	assert.ErrorIs(t, store.Get("missing", &got), persist.ErrCacheMiss)
}

func TestMemoryStoreDeleteAndClear(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	require.NoError(t, store.Set("a", "1", time.Minute))
	require.NoError(t, store.Delete("a"))
	require.NoError(t, store.Delete("a"))

	var got string
	assert.ErrorIs(t, store.Get("a", &got), persist.ErrCacheMiss)

	require.NoError(t, store.Set("b", "2", time.Minute))
	require.NoError(t, store.Clear(context.Background()))
	assert.ErrorIs(t, store.Get("b", &got), persist.ErrCacheMiss)
}

func TestMemoryStorePatternUnsupported(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	assert.ErrorIs(t, store.DeletePattern(context.Background(), ListKeyPrefix+"*"), ErrPatternUnsupported)
}
