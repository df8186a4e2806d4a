// Package loop drives an action manager from a real clock. The core action
// package treats time deltas as opaque numbers; Runner sits at the edge and
// converts wall-clock time between ticks into float64 seconds.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/playloop/action/pkg/action"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultTickInterval is the frame period used when the config leaves it
// unset: 60 ticks per second.
const DefaultTickInterval = time.Second / 60

// Config holds the runner settings.
type Config struct {
	// Manager is the action manager to drive. Required.
	Manager *action.Manager
	// Logger receives loop lifecycle logs. Defaults to a fresh logrus logger.
	Logger *logrus.Logger
	// TickInterval is the target frame period. Defaults to
	// DefaultTickInterval.
	TickInterval time.Duration
	// StopWhenIdle stops the loop once the manager has no actions left.
	StopWhenIdle bool
}

// Runner drives a Manager with wall-clock deltas at a fixed cadence.
type Runner struct {
	manager      *action.Manager
	logger       *logrus.Logger
	limiter      *rate.Limiter
	interval     time.Duration
	stopWhenIdle bool
}

// NewRunner validates the config and builds a runner.
func NewRunner(config Config) (*Runner, error) {
	if config.Manager == nil {
		return nil, fmt.Errorf("loop: manager is required")
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}

	return &Runner{
		manager:      config.Manager,
		logger:       config.Logger,
		limiter:      rate.NewLimiter(rate.Every(config.TickInterval), 1),
		interval:     config.TickInterval,
		stopWhenIdle: config.StopWhenIdle,
	}, nil
}

// Run ticks the manager until ctx is canceled or, when StopWhenIdle is set,
// until no actions remain. Each tick's delta is the wall-clock time since the
// previous tick, in seconds.
func (r *Runner) Run(ctx context.Context) error {
	log := r.logger.WithField("tick_interval", r.interval.String())
	log.Info("Starting action loop")

	last := time.Now()
	for {
		if err := r.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				log.Info("Action loop canceled")
				return ctxErr
			}
			return fmt.Errorf("loop: limiter wait: %w", err)
		}

		now := time.Now()
		r.manager.Update(now.Sub(last).Seconds())
		last = now

		if r.stopWhenIdle && r.manager.Size() == 0 {
			log.Info("No actions remaining, stopping loop")
			return nil
		}
	}
}
