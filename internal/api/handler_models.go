package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"betterrest-backend/internal/store"
)

// ArtifactResponse represents one registry entry.
type ArtifactResponse struct {
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Intercept float64   `json:"intercept"`
	Wake      float64   `json:"wake"`
	Sleep     float64   `json:"sleep"`
	Coffee    float64   `json:"coffee"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetModels handles the GET /api/models request.
func GetModels(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "model registry is not configured"})
			return
		}

		artifacts, err := s.ListArtifacts(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve models"})
			return
		}

		responses := make([]ArtifactResponse, 0, len(artifacts))
		for _, a := range artifacts {
			responses = append(responses, ArtifactResponse{
				Name: a.Name, Kind: a.Kind,
				Intercept: a.Intercept, Wake: a.WakeCoef, Sleep: a.SleepCoef, Coffee: a.CoffeeCoef,
				UpdatedAt: a.UpdatedAt,
			})
		}
		c.JSON(http.StatusOK, responses)
	}
}
