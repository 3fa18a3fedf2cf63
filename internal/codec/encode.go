package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// Encode writes the full state of acc to w.
func Encode(w io.Writer, acc *ledger.Account) error {
	bw := bufio.NewWriter(w)

	writeField(bw, keyUsername, escape(acc.Username()))
	writeField(bw, keyPassword, escape(acc.Password()))
	writeField(bw, keyBudget, acc.MonthlyBudget().StringFixed(2))
	writeField(bw, keySavingsGoal, acc.SavingsGoal().StringFixed(2))

	h := acc.Horizon()
	if date, ok := h.Date(); ok {
		writeField(bw, keyTargetDate, date.Format(time.DateOnly))
	}

	if n, ok := h.Months(); ok {
		writeField(bw, keyTargetMonths, strconv.Itoa(n))
	}

	fmt.Fprintln(bw, blockStart)

	for _, e := range acc.Entries() {
		fmt.Fprintf(bw, "%s|%s|%s|%s|%s\n",
			e.Type(),
			escape(e.Name()),
			e.Amount().StringFixed(2),
			escape(e.Label()),
			e.Date().Format(time.DateOnly),
		)
	}

	fmt.Fprintln(bw, blockEnd)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing account: %w", err)
	}

	return nil
}

func writeField(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s:%s\n", key, value)
}
