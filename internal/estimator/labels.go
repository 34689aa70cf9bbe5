package estimator

import (
	"fmt"
	"math"
)

const coffeeGlyph = "☕️"

// SleepDurationLabel renders a quarter-hour sleep amount, e.g. "8 hours 15 min".
// Whole hours keep a trailing space and no minute suffix. Fractions that are
// not a whole number of quarters also get no suffix.
func SleepDurationLabel(hours float64) string {
	whole := math.Floor(hours)
	label := fmt.Sprintf("%d hours ", int(whole))

	quarters := (hours - whole) / SleepStep
	if quarters != math.Trunc(quarters) {
		return label
	}
	switch int(quarters) {
	case 1:
		return label + "15 min"
	case 2:
		return label + "30 min"
	case 3:
		return label + "45 min"
	default:
		return label
	}
}

// CoffeeLabel renders the coffee stepper text.
func CoffeeLabel(cups int) string {
	switch {
	case cups <= 0:
		return "None"
	case cups == 1:
		return coffeeGlyph + " 1 cup"
	default:
		return fmt.Sprintf("%s %d cups", coffeeGlyph, cups)
	}
}
