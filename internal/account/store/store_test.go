package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/codec"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	s := store.New(dir)

	acc, err := ledger.NewAccount("alice", "secret")
	require.NoError(t, err)
	require.NoError(t, acc.SetMonthlyBudget(decimal.NewFromInt(500)))

	e, err := ledger.NewExpense("Groceries", decimal.NewFromInt(42), "Food", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	acc.AddEntry(e)

	exists, err := s.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Save(ctx, acc))

	exists, err = s.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = os.Stat(filepath.Join(dir, "alice.txt"))
	require.NoError(t, err)

	got, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Password())
	assert.Equal(t, "500", got.MonthlyBudget().String())
	require.Len(t, got.Entries(), 1)
	assert.True(t, e.Equal(got.Entries()[0]))
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())

	acc, err := ledger.NewAccount("bob", "pw")
	require.NoError(t, err)

	e, err := ledger.NewIncome("Gift", decimal.NewFromInt(10), "Family", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	acc.AddEntry(e)
	require.NoError(t, s.Save(ctx, acc))

	acc.RemoveEntry(e)
	require.NoError(t, s.Save(ctx, acc))

	got, err := s.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, got.Entries())
}

func TestStore_SaveLeavesOnlyAccountFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := store.New(dir)

	acc, err := ledger.NewAccount("carol", "pw")
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, s.Save(ctx, acc))
	}

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "carol.txt", files[0].Name())

	info, err := os.Stat(filepath.Join(dir, "carol.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_LoadMissing(t *testing.T) {
	s := store.New(t.TempDir())

	_, err := s.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestStore_InvalidID(t *testing.T) {
	ctx := context.Background()
	s := store.New(t.TempDir())

	_, err := s.Exists(ctx, "../escape")
	assert.ErrorIs(t, err, ledger.ErrInvalidID)

	_, err = s.Load(ctx, "a/b")
	assert.ErrorIs(t, err, ledger.ErrInvalidID)
}

func TestStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "carol.txt"), []byte("USERNAME:carol\n"), 0o600))

	_, err := store.New(dir).Load(context.Background(), "carol")
	assert.ErrorIs(t, err, codec.ErrCorrupt)
}

func TestStore_LoadLegacyEncoding(t *testing.T) {
	dir := t.TempDir()

	content := "USERNAME:dave\nPASSWORD:pw\nBUDGET:0.00\nSAVINGS_GOAL:0.00\nTRANSACTIONS_START\n" +
		"Expense|Café com açúcar|2.50|Alimentação|2024-03-01\nTRANSACTIONS_END\n"

	legacy, err := charmap.Windows1252.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dave.txt"), legacy, 0o600))

	got, err := store.New(dir).Load(context.Background(), "dave")
	require.NoError(t, err)
	require.Len(t, got.Entries(), 1)
	assert.Equal(t, "Café com açúcar", got.Entries()[0].Name())
	assert.Equal(t, "Alimentação", got.Entries()[0].Category())
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.New(t.TempDir()).Load(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
