// Package estimator derives a recommended bedtime from a wake time, a
// desired amount of sleep and the daily coffee intake, using an opaque
// regression model behind the Predictor interface.
package estimator

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// Predictor is the single inference entry point of a regression model.
// It maps (wake seconds-of-day, estimated sleep hours, coffee cups) to the
// predicted actual sleep in seconds.
type Predictor interface {
	Predict(ctx context.Context, wake, estimatedSleep, coffee float64) (float64, error)
}

// PredictorFunc adapts a plain function to the Predictor interface.
type PredictorFunc func(ctx context.Context, wake, estimatedSleep, coffee float64) (float64, error)

// Predict calls f.
func (f PredictorFunc) Predict(ctx context.Context, wake, estimatedSleep, coffee float64) (float64, error) {
	return f(ctx, wake, estimatedSleep, coffee)
}

// DefaultTimeLayout is the en-US short, time-only style.
const DefaultTimeLayout = "3:04 PM"

// maxPredictedSeconds keeps the prediction representable as a time.Duration.
const maxPredictedSeconds = float64(math.MaxInt64 / int64(time.Second))

// referenceDay anchors wake times so bedtime arithmetic is date-agnostic.
var referenceDay = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Result is a successful estimation.
type Result struct {
	Bedtime        time.Time
	Display        string
	PredictedSleep time.Duration
	// DayOffset is 0 when the bedtime falls on the wake-up day and negative
	// when it rolls back across midnight.
	DayOffset int
}

// Estimator computes bedtimes. It holds no mutable state and is safe for
// concurrent use as long as its Predictor is.
type Estimator struct {
	predictor Predictor
	layout    string
	logger    *zap.SugaredLogger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithTimeLayout sets the time.Format layout used for Result.Display.
func WithTimeLayout(layout string) Option {
	return func(e *Estimator) {
		if layout != "" {
			e.layout = layout
		}
	}
}

// WithLogger sets the logger used to record model failures.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Estimator backed by p.
func New(p Predictor, opts ...Option) *Estimator {
	e := &Estimator{
		predictor: p,
		layout:    DefaultTimeLayout,
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate validates the input, queries the model and subtracts the
// predicted sleep from the wake time.
func (e *Estimator) Estimate(ctx context.Context, in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	seconds, err := e.predict(ctx, in)
	if err != nil {
		e.logger.Warnf("bedtime estimation failed for wake=%s sleep=%.2f coffee=%d: %v",
			in.Wake, in.SleepHours, in.CoffeeCups, err)
		return Result{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	predicted := time.Duration(seconds * float64(time.Second))
	wake := referenceDay.Add(time.Duration(in.Wake.SecondsOfDay()) * time.Second)
	bedtime := wake.Add(-predicted)

	return Result{
		Bedtime:        bedtime,
		Display:        bedtime.Format(e.layout),
		PredictedSleep: predicted,
		DayOffset:      dayOffset(bedtime),
	}, nil
}

func (e *Estimator) predict(ctx context.Context, in Input) (seconds float64, err error) {
	if e.predictor == nil {
		return 0, fmt.Errorf("no model configured")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	seconds, err = e.predictor.Predict(ctx, float64(in.Wake.SecondsOfDay()), in.SleepHours, float64(in.CoffeeCups))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(seconds) || seconds < 0 || seconds > maxPredictedSeconds {
		return 0, fmt.Errorf("model returned unusable duration %v", seconds)
	}
	return seconds, nil
}

// dayOffset counts whole days between referenceDay and t, rounding down.
func dayOffset(t time.Time) int {
	d := t.Sub(referenceDay)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// Outcome is what the presentation layer shows after a calculation.
type Outcome struct {
	Title   string
	Message string
	Result  *Result
	Err     error
}

// OK reports whether the calculation produced a bedtime.
func (o Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}

// Describe turns an estimation into user-facing text. Every error
// collapses into the same generic message.
func Describe(res Result, err error) Outcome {
	if err != nil {
		return Outcome{Title: FailureTitle, Message: FailureMessage, Err: err}
	}
	return Outcome{Title: SuccessTitle, Message: res.Display, Result: &res}
}
