package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"betterrest-backend/internal/estimator"
)

type rangeResponse struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type formDefaults struct {
	WakeTime   string  `json:"wake_time"`
	SleepHours float64 `json:"sleep_hours"`
	CoffeeCups int     `json:"coffee_cups"`
}

type labelsResponse struct {
	Sleep  string `json:"sleep,omitempty"`
	Coffee string `json:"coffee,omitempty"`
}

// FormResponse describes the input form: defaults, stepper bounds and the
// recompute policy clients should follow.
type FormResponse struct {
	Defaults formDefaults   `json:"defaults"`
	Sleep    rangeResponse  `json:"sleep"`
	Coffee   rangeResponse  `json:"coffee"`
	Trigger  string         `json:"trigger"`
	Labels   labelsResponse `json:"labels"`
}

// GetForm handles GET /api/form.
func (h *Handler) GetForm(c *gin.Context) {
	c.JSON(http.StatusOK, FormResponse{
		Defaults: formDefaults{
			WakeTime:   h.defaults.Wake.String(),
			SleepHours: h.defaults.SleepHours,
			CoffeeCups: h.defaults.CoffeeCups,
		},
		Sleep:   rangeResponse{Min: estimator.MinSleepHours, Max: estimator.MaxSleepHours, Step: estimator.SleepStep},
		Coffee:  rangeResponse{Min: estimator.MinCoffeeCups, Max: estimator.MaxCoffeeCups, Step: 1},
		Trigger: string(h.trigger),
		Labels: labelsResponse{
			Sleep:  estimator.SleepDurationLabel(h.defaults.SleepHours),
			Coffee: estimator.CoffeeLabel(h.defaults.CoffeeCups),
		},
	})
}

// GetLabels handles GET /api/labels?sleep=8.25&coffee=2.
func (h *Handler) GetLabels(c *gin.Context) {
	var resp labelsResponse

	if raw, ok := c.GetQuery("sleep"); ok {
		hours, err := strconv.ParseFloat(raw, 64)
		if err != nil || hours < estimator.MinSleepHours || hours > estimator.MaxSleepHours {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sleep must be a number of hours between 4 and 12"})
			return
		}
		resp.Sleep = estimator.SleepDurationLabel(hours)
	}

	if raw, ok := c.GetQuery("coffee"); ok {
		cups, err := strconv.Atoi(raw)
		if err != nil || cups < estimator.MinCoffeeCups || cups > estimator.MaxCoffeeCups {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coffee must be a whole number of cups between 0 and 20"})
			return
		}
		resp.Coffee = estimator.CoffeeLabel(cups)
	}

	c.JSON(http.StatusOK, resp)
}
