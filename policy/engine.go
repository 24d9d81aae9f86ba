package policy

import (
	"errors"
	"fmt"

	"github.com/kelseymakesthings/auto-outfit/models"
)

// ErrRequiredPieceNotFound is returned when the required piece name does not
// exist anywhere in the closet. This is a configuration error surfaced before
// any search runs.
var ErrRequiredPieceNotFound = errors.New("required piece name not found. Make sure the name exists in your closet")

// Config represents the per-run outfit constraints
type Config struct {
	WarmthLevel   int    // exact warmth for bottom and jacket; 0 means unset
	ComfortLevel  int    // minimum comfort for all pieces; 0 means unset
	Fancy         bool   // when true, every piece must be fancy
	RequiredPiece string // name of a piece that must appear; "" means unset
}

// Engine evaluates outfit assignments against the active constraints.
// It holds no per-evaluation state: IsValid is a pure function of the
// assignment and the configuration.
type Engine struct {
	config           Config
	neutralColors    map[string]bool
	requiredCategory models.Category
	hasRequired      bool
}

// NewEngine creates a policy engine for the given constraints and closet.
// The required piece name, when set, is resolved to its category once here;
// an unknown name is a configuration error, not a search failure.
func NewEngine(config Config, closet *models.Closet, style *StyleConfig) (*Engine, error) {
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid policy config: %w", err)
	}
	if style == nil {
		style = DefaultStyleConfig()
	}

	neutrals := make(map[string]bool, len(style.NeutralColors))
	for _, color := range style.NeutralColors {
		neutrals[color] = true
	}

	engine := &Engine{
		config:        config,
		neutralColors: neutrals,
	}
	if config.RequiredPiece != "" {
		_, category, found := closet.FindPiece(config.RequiredPiece)
		if !found {
			return nil, ErrRequiredPieceNotFound
		}
		engine.requiredCategory = category
		engine.hasRequired = true
	}
	return engine, nil
}

func validateConfig(config Config) error {
	if config.WarmthLevel != 0 && (config.WarmthLevel < 1 || config.WarmthLevel > 3) {
		return fmt.Errorf("warmth level must be between 1 and 3, got %d", config.WarmthLevel)
	}
	if config.ComfortLevel != 0 && (config.ComfortLevel < 1 || config.ComfortLevel > 3) {
		return fmt.Errorf("comfort level must be between 1 and 3, got %d", config.ComfortLevel)
	}
	return nil
}

// IsValid determines whether the outfit (partial or complete) satisfies every
// active constraint. Categories that are not yet assigned satisfy every check.
func (e *Engine) IsValid(outfit models.Outfit) bool {
	return e.isColorMatched(outfit) &&
		e.hasSilhouette(outfit) &&
		(e.config.WarmthLevel == 0 || e.meetsWarmthLevel(outfit)) &&
		(e.config.ComfortLevel == 0 || e.meetsComfortLevel(outfit)) &&
		(!e.config.Fancy || e.isFancy(outfit)) &&
		(!e.hasRequired || e.containsRequiredPiece(outfit))
}

// isColorMatched checks that at most one distinct non-neutral color appears
// across the assigned pieces. Neutral colors never count against the limit.
func (e *Engine) isColorMatched(outfit models.Outfit) bool {
	colors := make(map[string]bool)
	for _, piece := range outfit {
		if !e.neutralColors[piece.Attributes.Color] {
			colors[piece.Attributes.Color] = true
		}
	}
	return len(colors) <= 1
}

// hasSilhouette checks that the top and bottom are not both loose
func (e *Engine) hasSilhouette(outfit models.Outfit) bool {
	top, hasTop := outfit[models.CategoryTop]
	bottom, hasBottom := outfit[models.CategoryBottom]
	return !(hasTop && hasBottom && top.Attributes.Loose && bottom.Attributes.Loose)
}

// meetsWarmthLevel checks that every assigned warmth-rated piece matches the
// configured level exactly. Tops and shoes are not warmth-checked.
func (e *Engine) meetsWarmthLevel(outfit models.Outfit) bool {
	for _, category := range models.Categories {
		if !category.HasWarmthRating() {
			continue
		}
		if piece, ok := outfit[category]; ok && piece.Attributes.Warmth != e.config.WarmthLevel {
			return false
		}
	}
	return true
}

// meetsComfortLevel checks every assigned piece against the minimum comfort
func (e *Engine) meetsComfortLevel(outfit models.Outfit) bool {
	for _, piece := range outfit {
		if piece.Attributes.Comfort < e.config.ComfortLevel {
			return false
		}
	}
	return true
}

// isFancy checks that every assigned piece is fancy
func (e *Engine) isFancy(outfit models.Outfit) bool {
	for _, piece := range outfit {
		if !piece.Attributes.Fancy {
			return false
		}
	}
	return true
}

// containsRequiredPiece locks only the category the required piece belongs
// to: if that category is assigned, the assignment must be the required piece.
func (e *Engine) containsRequiredPiece(outfit models.Outfit) bool {
	piece, ok := outfit[e.requiredCategory]
	return !ok || piece.Name == e.config.RequiredPiece
}
