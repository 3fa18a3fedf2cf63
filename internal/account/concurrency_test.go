package account_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

func TestService_ConcurrentAddEntry(t *testing.T) {
	ctx := context.Background()
	svc := account.NewService(store.New(t.TempDir()), account.WithClock(fixedClock))

	_, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	const n = 100

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    []error
		indexes = make(map[int]bool, n)
	)

	for i := range n {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, index, err := svc.AddEntry(ctx, "alice", account.EntryParams{
				Type:   ledger.TypeExpense,
				Name:   fmt.Sprintf("Coffee %d", i),
				Amount: decimal.NewFromInt(int64(i + 1)),
				Label:  "Food",
			})

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, err)
				return
			}

			indexes[index] = true
		}()

		go func() {
			defer wg.Done()

			if _, err := svc.Summarize(ctx, "alice"); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, indexes, n)

	acc, err := svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, acc.Entries(), n)
}
