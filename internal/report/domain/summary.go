package domain

import "math"

// Summary holds financial metrics derived on read; nothing here is stored.
type Summary struct {
	TotalBudget     int64
	TotalPaid       int64
	TotalPending    int64
	ProgressPercent int
}

// Summarize computes the aggregate metrics over a set of projects and their
// payments. ProgressPercent is round(100 * paid / budget), or 0 when there is
// no budget.
func Summarize(projects []Project, payments []Payment) Summary {
	var s Summary
	for _, p := range projects {
		s.TotalBudget += p.Budget
		s.TotalPending += p.Balance
	}
	for _, p := range payments {
		s.TotalPaid += p.Amount
	}
	if s.TotalBudget > 0 {
		s.ProgressPercent = int(math.Round(float64(s.TotalPaid) * 100 / float64(s.TotalBudget)))
	}
	return s
}
