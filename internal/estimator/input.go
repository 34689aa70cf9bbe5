package estimator

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"betterrest-backend/internal/parse"
)

const (
	MinSleepHours = 4.0
	MaxSleepHours = 12.0
	SleepStep     = 0.25

	MinCoffeeCups = 0
	MaxCoffeeCups = 20
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Sleep amounts move in quarter-hour steps.
	err := v.RegisterValidation("quarterhour", func(fl validator.FieldLevel) bool {
		q := fl.Field().Float() / SleepStep
		return q == math.Trunc(q)
	})
	if err != nil {
		panic(fmt.Sprintf("estimator: register quarterhour validation: %v", err))
	}
	return v
}

// WakeTime is the time of day the user has to wake up.
type WakeTime struct {
	Hour   int `json:"hour" validate:"gte=0,lte=23"`
	Minute int `json:"minute" validate:"gte=0,lte=59"`
}

// ParseWakeTime accepts the clock formats understood by parse.ParseClock.
func ParseWakeTime(s string) (WakeTime, error) {
	c, err := parse.ParseClock(s)
	if err != nil {
		return WakeTime{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return WakeTime{Hour: c.Hour, Minute: c.Minute}, nil
}

// SecondsOfDay is the number of seconds since midnight.
func (w WakeTime) SecondsOfDay() int {
	return w.Hour*3600 + w.Minute*60
}

func (w WakeTime) String() string {
	return parse.Clock{Hour: w.Hour, Minute: w.Minute}.String()
}

// Input holds the three values the model is queried with.
type Input struct {
	Wake       WakeTime
	SleepHours float64 `validate:"gte=4,lte=12,quarterhour"`
	CoffeeCups int     `validate:"gte=0,lte=20"`
}

// Validate checks every field against its domain.
func (in Input) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
