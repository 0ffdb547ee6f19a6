package ui

import (
	"time"

	analyticsApp "github.com/profitlens/seller-analytics/business/analytics/app"
	reconcileApp "github.com/profitlens/seller-analytics/business/reconcile/app"
)

// tickMsg drives periodic UI refreshes while an operation is running.
type tickMsg time.Time

// analysisDoneMsg carries the result of a completed profitability analysis.
type analysisDoneMsg struct {
	analysis *analyticsApp.Analysis
	elapsed  time.Duration
}

// fetchDoneMsg carries the outcome of a report download run.
type fetchDoneMsg struct {
	path      string
	succeeded int
	failed    int
	elapsed   time.Duration
}

// reconcileDoneMsg carries a finished API vs file comparison.
type reconcileDoneMsg struct {
	result  *reconcileApp.Result
	elapsed time.Duration
}

// errMsg reports a failed operation.
type errMsg struct {
	err error
}
