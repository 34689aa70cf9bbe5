package estimator

import (
	"context"
	"fmt"
	"math"
)

// Trigger decides when the form recomputes its bedtime.
type Trigger string

const (
	// TriggerOnDemand recomputes only when Calculate is called.
	TriggerOnDemand Trigger = "on_demand"
	// TriggerReactive recomputes after every input change.
	TriggerReactive Trigger = "reactive"
)

// ParseTrigger validates a trigger policy name.
func ParseTrigger(s string) (Trigger, error) {
	switch Trigger(s) {
	case TriggerOnDemand, TriggerReactive:
		return Trigger(s), nil
	}
	return "", fmt.Errorf("unknown trigger policy %q", s)
}

// Defaults are the initial form values.
type Defaults struct {
	Wake       WakeTime
	SleepHours float64
	CoffeeCups int
}

// Form is the editable view state in front of an Estimator. It is owned
// by a single caller and is not safe for concurrent use.
type Form struct {
	est     *Estimator
	trigger Trigger
	input   Input

	outcome    Outcome
	calculated bool
}

// NewForm builds a form from defaults, snapping them into range. A
// reactive form computes its first outcome immediately.
func NewForm(ctx context.Context, est *Estimator, d Defaults, trigger Trigger) *Form {
	f := &Form{
		est:     est,
		trigger: trigger,
		input: Input{
			Wake:       d.Wake,
			SleepHours: snapSleep(d.SleepHours),
			CoffeeCups: clampInt(d.CoffeeCups, MinCoffeeCups, MaxCoffeeCups),
		},
	}
	f.changed(ctx)
	return f
}

// Input returns the current values.
func (f *Form) Input() Input { return f.input }

// Trigger returns the form's recompute policy.
func (f *Form) Trigger() Trigger { return f.trigger }

// SetWakeTime replaces the wake time.
func (f *Form) SetWakeTime(ctx context.Context, w WakeTime) {
	f.input.Wake = w
	f.changed(ctx)
}

// SetSleepHours sets the sleep amount, rounded to the nearest quarter hour
// and clamped to [MinSleepHours, MaxSleepHours].
func (f *Form) SetSleepHours(ctx context.Context, hours float64) {
	f.input.SleepHours = snapSleep(hours)
	f.changed(ctx)
}

// StepSleep moves the sleep amount by steps quarter hours.
func (f *Form) StepSleep(ctx context.Context, steps int) {
	f.SetSleepHours(ctx, f.input.SleepHours+float64(steps)*SleepStep)
}

// SetCoffeeCups sets the cup count clamped to [MinCoffeeCups, MaxCoffeeCups].
func (f *Form) SetCoffeeCups(ctx context.Context, cups int) {
	f.input.CoffeeCups = clampInt(cups, MinCoffeeCups, MaxCoffeeCups)
	f.changed(ctx)
}

// StepCoffee moves the cup count by steps.
func (f *Form) StepCoffee(ctx context.Context, steps int) {
	f.SetCoffeeCups(ctx, f.input.CoffeeCups+steps)
}

// SleepLabel is the label for the current sleep amount.
func (f *Form) SleepLabel() string { return SleepDurationLabel(f.input.SleepHours) }

// CoffeeLabel is the label for the current coffee intake.
func (f *Form) CoffeeLabel() string { return CoffeeLabel(f.input.CoffeeCups) }

// Calculate runs the estimator on the current values and stores the outcome.
func (f *Form) Calculate(ctx context.Context) Outcome {
	res, err := f.est.Estimate(ctx, f.input)
	f.outcome = Describe(res, err)
	f.calculated = true
	return f.outcome
}

// Outcome returns the latest outcome and whether one has been computed.
func (f *Form) Outcome() (Outcome, bool) {
	return f.outcome, f.calculated
}

func (f *Form) changed(ctx context.Context) {
	if f.trigger == TriggerReactive {
		f.Calculate(ctx)
	}
}

func snapSleep(hours float64) float64 {
	if math.IsNaN(hours) {
		return MinSleepHours
	}
	return math.Max(MinSleepHours, math.Min(MaxSleepHours, math.Round(hours/SleepStep)*SleepStep))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
