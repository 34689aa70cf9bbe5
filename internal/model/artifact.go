package model

import "time"

// Artifact is a stored regression model: a named set of linear coefficients.
type Artifact struct {
	Name       string    `gorm:"primaryKey;size:128"`
	Kind       string    `gorm:"size:32;not null"`
	Intercept  float64   `gorm:"not null"`
	WakeCoef   float64   `gorm:"not null"`
	SleepCoef  float64   `gorm:"not null"`
	CoffeeCoef float64   `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
