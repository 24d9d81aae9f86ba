package service

import (
	"github.com/kelseymakesthings/auto-outfit/models"
)

// OutfitServiceInterface defines the contract for outfit generation
type OutfitServiceInterface interface {
	Generate() (models.Outfit, error)
}
