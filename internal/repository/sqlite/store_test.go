package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"committee-service/internal/model"
	"committee-service/internal/repository"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "committee.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func countAll(t *testing.T, store *Store) int {
	t.Helper()

	var n int
	err := store.sqlDB.QueryRow(`SELECT COUNT(*) FROM committee`).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "committee.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewCommitteeRepo(first).Insert(context.Background(), "Finance", "FIN"))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	list, err := NewCommitteeRepo(second).ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCommitteeRepo_InsertAndList(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewCommitteeRepo(store)

	require.NoError(t, repo.Insert(ctx, "Finance", "FIN"))
	require.NoError(t, repo.Insert(ctx, "Operations", "OPS"))

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Finance", list[0].FullName)
	assert.Equal(t, "FIN", list[0].ShortName)
	assert.Equal(t, "Operations", list[1].FullName)
	assert.Less(t, list[0].ID, list[1].ID)
}

func TestCommitteeRepo_SoftDelete(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewCommitteeRepo(store)
	deletedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return deletedAt }

	require.NoError(t, repo.Insert(ctx, "Finance", "FIN"))
	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	id := list[0].ID

	n, err := repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "already deleted")

	n, err = repo.SoftDelete(ctx, id+100)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "missing id")

	list, err = repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, countAll(t, store), "row is kept")

	var stored int64
	require.NoError(t, store.sqlDB.QueryRow(`SELECT deleted FROM committee WHERE id = ?`, id).Scan(&stored))
	assert.Equal(t, deletedAt.UnixMilli(), stored)
}

func TestCommitteeRepo_UpdateNamesIgnoresDeleted(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewCommitteeRepo(store)

	require.NoError(t, repo.Insert(ctx, "Finance", "FIN"))
	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	id := list[0].ID

	_, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)

	n, err := repo.UpdateNames(ctx, id, "Budget", "BUD")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.UpdateNames(ctx, id+1, "Budget", "BUD")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestStore_RunInTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewCommitteeRepo(store)
	abort := assert.AnError

	err := store.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := repo.Insert(ctx, "Finance", "FIN"); err != nil {
			return err
		}
		list, err := repo.ListActive(ctx)
		if err != nil {
			return err
		}
		assert.Len(t, list, 1, "insert is visible inside the transaction")
		return abort
	})
	assert.ErrorIs(t, err, abort)
	assert.Equal(t, 0, countAll(t, store))

	err = store.RunInTransaction(ctx, func(ctx context.Context) error {
		return repo.Insert(ctx, "Finance", "FIN")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countAll(t, store))
}

func TestUserRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	repo := NewUserRepo(store)

	alice := model.User{ID: 7, Username: "alice", DisplayName: "Alice", Email: "alice@example.org"}
	require.NoError(t, repo.Upsert(ctx, alice))

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	alice.Email = "alice@example.com"
	require.NoError(t, repo.Upsert(ctx, alice))
	got, err = repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
