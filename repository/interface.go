package repository

import (
	"github.com/kelseymakesthings/auto-outfit/models"
)

// ClosetRepositoryInterface defines the contract for loading the closet catalog
type ClosetRepositoryInterface interface {
	Load() (*models.Closet, error)
}
