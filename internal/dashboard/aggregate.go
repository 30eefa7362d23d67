// Package dashboard computes the summary shown on the landing screen:
// running totals, recent activity, expense breakdown by category, and a
// trailing 7-day income/expense series. Everything here is a pure function
// of the transaction collection; the summary is recomputed on every load
// and never persisted.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"fincopilot/internal/core"
)

const (
	recentLimit = 10
	seriesDays  = 7
)

// CategoryAmount is one row of the expense breakdown.
type CategoryAmount struct {
	Category core.Category `json:"category"`
	Amount   core.Money    `json:"amount"`
}

// SeriesPoint is one day of the trailing window, oldest first.
type SeriesPoint struct {
	Label    string     `json:"label"` // short human date, e.g. "Jan 5"
	Date     string     `json:"date"`  // ISO date the label stands for
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
}

// Summary aggregates a transaction collection for presentation.
type Summary struct {
	TotalIncome        core.Money         `json:"totalIncome"`
	TotalExpenses      core.Money         `json:"totalExpenses"`
	Profit             core.Money         `json:"profit"`
	RecentTransactions []core.Transaction `json:"recentTransactions"`
	ExpensesByCategory []CategoryAmount   `json:"expensesByCategory"`
	IncomeVsExpenses   []SeriesPoint      `json:"incomeVsExpenses"`
}

// Summarize computes the dashboard summary over the full collection. Order
// independent, deterministic, and total: the empty collection yields zero
// totals, empty lists, and a 7-point all-zero series.
func Summarize(transactions []core.Transaction) Summary {
	return SummarizeAt(transactions, time.Now())
}

// SummarizeAt is Summarize with an injected "today" anchoring the trailing
// window.
func SummarizeAt(transactions []core.Transaction, today time.Time) Summary {
	s := Summary{
		RecentTransactions: []core.Transaction{},
		ExpensesByCategory: []CategoryAmount{},
	}

	for _, t := range transactions {
		switch t.Type {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case core.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
	}
	s.Profit = s.TotalIncome.Sub(s.TotalExpenses)

	s.RecentTransactions = recent(transactions)
	s.ExpensesByCategory = expensesByCategory(transactions)
	s.IncomeVsExpenses = series(transactions, today)
	return s
}

// recent returns up to 10 transactions by creation time, newest first.
// Equal timestamps keep their input order.
func recent(transactions []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out
}

// expensesByCategory accumulates expense totals per category in first-seen
// order, then stable-sorts by amount descending so equal totals keep their
// first-seen relative position.
func expensesByCategory(transactions []core.Transaction) []CategoryAmount {
	out := []CategoryAmount{}
	index := map[core.Category]int{}
	for _, t := range transactions {
		if t.Type != core.Expense {
			continue
		}
		if i, ok := index[t.Category]; ok {
			out[i].Amount = out[i].Amount.Add(t.Amount)
			continue
		}
		index[t.Category] = len(out)
		out = append(out, CategoryAmount{Category: t.Category, Amount: t.Amount})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.Cents > out[j].Amount.Cents
	})
	return out
}

// series builds exactly 7 points for today-6 .. today, oldest first. A
// transaction belongs to a day when its date string has that day's ISO form
// as a prefix, which covers both date-only and datetime-stamped fields.
// Days with no activity contribute zeros, never gaps.
func series(transactions []core.Transaction, today time.Time) []SeriesPoint {
	points := make([]SeriesPoint, 0, seriesDays)
	for i := seriesDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		iso := day.Format("2006-01-02")
		point := SeriesPoint{
			Label: day.Format("Jan 2"),
			Date:  iso,
		}
		for _, t := range transactions {
			if !strings.HasPrefix(t.Date, iso) {
				continue
			}
			switch t.Type {
			case core.Income:
				point.Income = point.Income.Add(t.Amount)
			case core.Expense:
				point.Expenses = point.Expenses.Add(t.Amount)
			}
		}
		points = append(points, point)
	}
	return points
}
