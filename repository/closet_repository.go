package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kelseymakesthings/auto-outfit/models"
)

// ClosetRepository loads the closet catalog from a JSON file
type ClosetRepository struct {
	path string
}

// NewClosetRepository creates a new closet repository for the given file path
func NewClosetRepository(path string) *ClosetRepository {
	return &ClosetRepository{path: path}
}

// Load reads, parses and validates the closet catalog. Any failure here is
// fatal for the run: no search starts without a valid closet.
func (r *ClosetRepository) Load() (*models.Closet, error) {
	path := r.path
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(wd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read closet file: %w", err)
	}

	var closet models.Closet
	if err := json.Unmarshal(data, &closet); err != nil {
		return nil, fmt.Errorf("failed to parse closet file: %w", err)
	}

	if err := validateCloset(&closet); err != nil {
		return nil, fmt.Errorf("invalid closet file: %w", err)
	}

	log.Printf("✅ ClosetRepository: Successfully loaded closet from %s (%d pieces)", path, countPieces(&closet))
	return &closet, nil
}

// validateCloset checks piece names and attribute ranges per category.
// Warmth is only range-checked for categories that carry a warmth rating.
func validateCloset(closet *models.Closet) error {
	for _, category := range models.Categories {
		seen := make(map[string]bool)
		for _, piece := range closet.Pieces(category) {
			if piece.Name == "" {
				return fmt.Errorf("%s: piece with empty name", category.CatalogKey())
			}
			if seen[piece.Name] {
				return fmt.Errorf("%s: duplicate piece name %q", category.CatalogKey(), piece.Name)
			}
			seen[piece.Name] = true

			if category.HasWarmthRating() && (piece.Attributes.Warmth < 1 || piece.Attributes.Warmth > 3) {
				return fmt.Errorf("%s: piece %q has warmth %d, expected 1-3",
					category.CatalogKey(), piece.Name, piece.Attributes.Warmth)
			}
			if piece.Attributes.Comfort < 1 || piece.Attributes.Comfort > 3 {
				return fmt.Errorf("%s: piece %q has comfort %d, expected 1-3",
					category.CatalogKey(), piece.Name, piece.Attributes.Comfort)
			}
		}
	}
	return nil
}

func countPieces(closet *models.Closet) int {
	total := 0
	for _, category := range models.Categories {
		total += len(closet.Pieces(category))
	}
	return total
}
