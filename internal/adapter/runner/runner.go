// Package runner drives a sequential bulk update over the input rows.
package runner

import (
	"context"
	"time"

	"appliance-portcfg/internal/pkg/console"
	"appliance-portcfg/internal/pkg/logging"
	"appliance-portcfg/internal/port"
	"appliance-portcfg/internal/types"

	"github.com/sirupsen/logrus"
)

// Result holds the outcomes of a run in input order.
type Result struct {
	Outcomes  []types.Outcome
	Succeeded int
	Failed    int
	Skipped   int
}

func (r *Result) add(outcome types.Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch outcome.Kind {
	case types.OutcomeSucceeded:
		r.Succeeded++
	case types.OutcomeFailed:
		r.Failed++
	case types.OutcomeSkipped:
		r.Skipped++
	}
}

// Runner processes rows one at a time, reporting each outcome.
type Runner struct {
	processor port.RowProcessor
	console   *console.Console
	rowDelay  time.Duration
	logger    *logrus.Entry
}

// NewRunner creates a runner. rowDelay is waited after every row that reached
// the dashboard; zero disables pacing.
func NewRunner(processor port.RowProcessor, con *console.Console, rowDelay time.Duration, logger *logrus.Entry) *Runner {
	if logger == nil {
		logger = logging.WithComponent("runner")
	}
	return &Runner{
		processor: processor,
		console:   con,
		rowDelay:  rowDelay,
		logger:    logger,
	}
}

// Run attempts every row, in order, whatever the individual outcomes are.
// A cancelled context does not stop the loop: the remaining rows fail fast
// in the gateway so that each still yields an outcome.
func (r *Runner) Run(ctx context.Context, rows []types.Row, networkColumn, portColumn string) *Result {
	result := &Result{Outcomes: make([]types.Outcome, 0, len(rows))}

	progress := r.console.NewProgress(len(rows))
	defer progress.Finish()

	for i, row := range rows {
		networkName, _ := row.Get(networkColumn)
		portID, _ := row.Get(portColumn)

		logger := logging.WithRow(r.logger, networkName, portID, row.Line)
		logger.Infof("Processing row %d of %d", i+1, len(rows))
		progress.Advance()

		outcome := r.processor.Process(ctx, row)
		result.add(outcome)
		report(logger, outcome)

		if outcome.Kind != types.OutcomeSkipped && i < len(rows)-1 {
			r.pace(ctx)
		}
	}

	return result
}

func report(logger *logrus.Entry, outcome types.Outcome) {
	switch outcome.Kind {
	case types.OutcomeSkipped:
		logger.WithField("reason", outcome.Reason).Error("Skipped row")
	case types.OutcomeFailed:
		logger.WithFields(logrus.Fields{
			"code":  outcome.Code,
			"error": outcome.Message,
		}).Error("Error updating appliance port")
	case types.OutcomeSucceeded:
		logger.WithField("response", map[string]interface{}(outcome.Response)).Info("Successfully updated appliance port")
	}
}

func (r *Runner) pace(ctx context.Context) {
	if r.rowDelay <= 0 {
		return
	}

	timer := time.NewTimer(r.rowDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
