package service

import (
	"github.com/kelseymakesthings/auto-outfit/models"
)

// DisplayServiceInterface defines the contract for rendering an outfit image
type DisplayServiceInterface interface {
	Render(outfit models.Outfit) (string, error)
}
