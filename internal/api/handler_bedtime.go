package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"betterrest-backend/internal/estimator"
	"betterrest-backend/internal/mw"
)

// bedtimeRequest carries the form values. Omitted fields fall back to the
// configured defaults.
type bedtimeRequest struct {
	WakeTime   *string  `json:"wake_time" form:"wake"`
	SleepHours *float64 `json:"sleep_hours" form:"sleep"`
	CoffeeCups *int     `json:"coffee_cups" form:"coffee"`
}

// BedtimeResponse is a successful estimation.
type BedtimeResponse struct {
	Title                 string  `json:"title"`
	Bedtime               string  `json:"bedtime"`
	Message               string  `json:"message"`
	PredictedSleepSeconds float64 `json:"predicted_sleep_seconds"`
	DayOffset             int     `json:"day_offset"`
	WakeTime              string  `json:"wake_time"`
	SleepLabel            string  `json:"sleep_label"`
	CoffeeLabel           string  `json:"coffee_label"`
}

// GetBedtime handles GET /api/bedtime?wake=06:32&sleep=8&coffee=1.
func (h *Handler) GetBedtime(c *gin.Context) {
	var req bedtimeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.estimate(c, req)
}

// PostBedtime handles POST /api/bedtime with a JSON body.
func (h *Handler) PostBedtime(c *gin.Context) {
	var req bedtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.estimate(c, req)
}

func (h *Handler) estimate(c *gin.Context, req bedtimeRequest) {
	in, err := h.input(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.estimator.Estimate(c.Request.Context(), in)
	outcome := estimator.Describe(res, err)
	switch {
	case errors.Is(err, estimator.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Errorf("[request_id=%s] bedtime estimation failed: %v", mw.GetRequestID(c), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"title": outcome.Title, "error": outcome.Message})
		return
	}

	c.JSON(http.StatusOK, BedtimeResponse{
		Title:                 outcome.Title,
		Bedtime:               res.Display,
		Message:               outcome.Message,
		PredictedSleepSeconds: res.PredictedSleep.Seconds(),
		DayOffset:             res.DayOffset,
		WakeTime:              in.Wake.String(),
		SleepLabel:            estimator.SleepDurationLabel(in.SleepHours),
		CoffeeLabel:           estimator.CoffeeLabel(in.CoffeeCups),
	})
}

func (h *Handler) input(req bedtimeRequest) (estimator.Input, error) {
	in := estimator.Input{
		Wake:       h.defaults.Wake,
		SleepHours: h.defaults.SleepHours,
		CoffeeCups: h.defaults.CoffeeCups,
	}
	if req.WakeTime != nil {
		wake, err := estimator.ParseWakeTime(*req.WakeTime)
		if err != nil {
			return estimator.Input{}, err
		}
		in.Wake = wake
	}
	if req.SleepHours != nil {
		in.SleepHours = *req.SleepHours
	}
	if req.CoffeeCups != nil {
		in.CoffeeCups = *req.CoffeeCups
	}
	return in, nil
}
