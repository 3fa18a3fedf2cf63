package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func mustExpense(t *testing.T, name, amt, category string, y, m, d int) ledger.Entry {
	t.Helper()

	e, err := ledger.NewExpense(name, amount(amt), category, date(y, m, d))
	require.NoError(t, err)

	return e
}

func TestLedger_AddKeepsInsertionOrder(t *testing.T) {
	l := ledger.New()
	late := mustExpense(t, "Late", "1", "A", 2024, 5, 1)
	early := mustExpense(t, "Early", "1", "A", 2023, 1, 1)

	l.Add(late)
	l.Add(early)

	got := l.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "Late", got[0].Name())
	assert.Equal(t, "Early", got[1].Name())
}

func TestLedger_EntriesIsSnapshot(t *testing.T) {
	l := ledger.New(mustExpense(t, "A", "1", "X", 2024, 1, 1))

	snap := l.Entries()
	snap[0] = mustExpense(t, "B", "2", "Y", 2024, 1, 2)

	assert.Equal(t, 1, l.Len())

	first, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", first.Name())
}

func TestLedger_RemoveByValueTakesFirstMatch(t *testing.T) {
	dup := mustExpense(t, "Coffee", "3", "Food", 2024, 1, 1)
	other := mustExpense(t, "Tea", "2", "Food", 2024, 1, 2)
	l := ledger.New(dup, other, dup)

	assert.True(t, l.Remove(dup))

	got := l.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "Tea", got[0].Name())
	assert.Equal(t, "Coffee", got[1].Name())

	assert.False(t, l.Remove(mustExpense(t, "Missing", "1", "Food", 2024, 1, 1)))
}

func TestLedger_RemoveAt(t *testing.T) {
	l := ledger.New(
		mustExpense(t, "A", "1", "X", 2024, 1, 1),
		mustExpense(t, "B", "1", "X", 2024, 1, 1),
		mustExpense(t, "C", "1", "X", 2024, 1, 1),
	)

	require.NoError(t, l.RemoveAt(1))

	got := l.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name())
	assert.Equal(t, "C", got[1].Name())

	assert.ErrorIs(t, l.RemoveAt(2), ledger.ErrIndexOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(-1), ledger.ErrIndexOutOfRange)
	assert.Equal(t, 2, l.Len())
}
