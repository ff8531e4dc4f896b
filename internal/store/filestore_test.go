package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollify/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, s.Init(context.Background()))
	return s
}

func testUser(cnic string) models.User {
	return models.User{
		ID:       strconv.Itoa(len(cnic)) + cnic,
		FullName: "Test User",
		CNIC:     cnic,
	}
}

func TestInitSeedsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewFileStore(path)
	require.NoError(t, s.Init(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestInitKeepsExistingData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, testUser("11111")))

	require.NoError(t, s.Init(ctx))

	users, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	users, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewFileStore(path)
	users, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAppendPreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cnics := []string{"11111", "22222", "33333"}
	for _, c := range cnics {
		require.NoError(t, s.Append(ctx, testUser(c)))
	}

	users, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, c := range cnics {
		assert.Equal(t, c, users[i].CNIC)
	}
}

func TestAppendWritesPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	s := NewFileStore(path)
	ctx := context.Background()
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Append(ctx, testUser("11111")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  {")
	assert.Contains(t, string(data), `    "cnic": "11111"`)
}

func TestLoadIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Append(ctx, testUser("11111")))
	require.NoError(t, s.Append(ctx, testUser("22222")))

	first, err := s.Load(ctx)
	require.NoError(t, err)
	second, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindByCNICEmptyStore(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindByCNIC(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByCNICReturnsFirstDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testUser("12345")
	first.ID = "first"
	second := testUser("12345")
	second.ID = "second"
	require.NoError(t, s.Append(ctx, first))
	require.NoError(t, s.Append(ctx, second))

	found, err := s.FindByCNIC(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "first", found.ID)
}

func TestExtraFieldsSurviveRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("12345")
	u.Extra = map[string]string{"referredBy": "a friend"}
	require.NoError(t, s.Append(ctx, u))

	found, err := s.FindByCNIC(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "a friend", found.Extra["referredBy"])
}
