package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orioninvest/brokerage/pkg/docstore"
)

func TestMemoryStoreGetAbsent(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	doc, err := store.Get(context.Background(), docstore.Users, "missing")
	require.NoError(err, "a missing document is not an error")
	require.Nil(doc)
}

func TestMemoryStoreSetReplaces(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(store.Set(ctx, docstore.Users, "u1", docstore.Document{
		"username": "amira",
		"country":  "Egypt",
	}))
	require.NoError(store.Set(ctx, docstore.Users, "u1", docstore.Document{
		"username": "amira2",
	}))

	doc, err := store.Get(ctx, docstore.Users, "u1")
	require.NoError(err)
	require.Equal("amira2", doc["username"])
	_, hasCountry := doc["country"]
	require.False(hasCountry, "Set fully replaces the document")
}

func TestMemoryStoreUpdateMerges(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(store.Set(ctx, docstore.Users, "u1", docstore.Document{
		"currentBalance": 905000.0,
		"username":       "amira",
	}))
	require.NoError(store.Update(ctx, docstore.Users, "u1", docstore.Document{
		"first_name": "Amira",
	}))

	doc, err := store.Get(ctx, docstore.Users, "u1")
	require.NoError(err)
	require.Equal("Amira", doc["first_name"])
	require.Equal(905000.0, doc["currentBalance"], "merge leaves unrelated fields intact")
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	store := NewMemoryStore()
	err := store.Update(context.Background(), docstore.Users, "missing", docstore.Document{"a": 1})
	require.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestMemoryStoreCloneIsolation(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	store := NewMemoryStore()

	seed := docstore.Document{"username": "amira"}
	_ = store.Set(ctx, docstore.Users, "u1", seed)
	seed["username"] = "mutated"

	doc, _ := store.Get(ctx, docstore.Users, "u1")
	assert.Equal("amira", doc["username"], "stored document does not alias the caller's map")

	doc["username"] = "mutated-again"
	again, _ := store.Get(ctx, docstore.Users, "u1")
	assert.Equal("amira", again["username"], "fetched document does not alias store internals")
}

func TestMemoryStoreFailWith(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := NewMemoryStore()
	boom := errors.New("network down")
	store.FailWith = boom

	_, err := store.Get(ctx, docstore.Accounts, "u1")
	require.ErrorIs(err, boom)
	require.ErrorIs(store.Set(ctx, docstore.Users, "u1", nil), boom)
	require.ErrorIs(store.Update(ctx, docstore.Users, "u1", nil), boom)
	require.Equal(3, store.Calls(), "failed calls still count")
}
