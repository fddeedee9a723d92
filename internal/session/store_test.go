package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeNowForTest() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	defer store.Close()

	token, sess := store.Create()
	require.NotEmpty(t, token)
	require.NotNil(t, sess)
	assert.Equal(t, StateNoResume, sess.State)

	got, ok := store.Get(token)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestStoreUnknownToken(t *testing.T) {
	store := NewStore()
	defer store.Close()

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestStoreTokensAreUnique(t *testing.T) {
	store := NewStore()
	defer store.Close()

	a, _ := store.Create()
	b, _ := store.Create()
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, store.Len())
}

func TestStoreExpiryOnAccess(t *testing.T) {
	now := timeNowForTest()
	clock := func() time.Time { return now }
	store := NewStore(WithTTL(time.Minute), withClock(clock))
	defer store.Close()

	token, _ := store.Create()

	now = now.Add(30 * time.Second)
	_, ok := store.Get(token)
	assert.True(t, ok)

	// Access refreshed the timestamp, so expiry counts from the last Get.
	now = now.Add(55 * time.Second)
	_, ok = store.Get(token)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = store.Get(token)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len(), "expired session is evicted on access")
}

func TestStoreEvictExpired(t *testing.T) {
	now := timeNowForTest()
	clock := func() time.Time { return now }
	store := NewStore(WithTTL(time.Minute), withClock(clock))
	defer store.Close()

	store.Create()
	store.Create()
	require.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	store.evictExpired()
	assert.Equal(t, 0, store.Len())
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	defer store.Close()

	token, _ := store.Create()
	store.Delete(token)

	_, ok := store.Get(token)
	assert.False(t, ok)

	// Deleting again is harmless.
	store.Delete(token)
}
