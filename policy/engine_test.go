package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelseymakesthings/auto-outfit/models"
)

func newPiece(name, color string, warmth, comfort int, fancy, loose bool) models.Piece {
	return models.Piece{
		Name:     name,
		Filename: name + ".png",
		Attributes: models.PieceAttributes{
			Color:   color,
			Warmth:  warmth,
			Comfort: comfort,
			Fancy:   fancy,
			Loose:   loose,
		},
	}
}

func newTestCloset() *models.Closet {
	return &models.Closet{
		Tops:    []models.Piece{newPiece("black tee", "black", 1, 2, false, false)},
		Bottoms: []models.Piece{newPiece("blue pants", "blue", 2, 2, false, false)},
		Jackets: []models.Piece{newPiece("black blazer", "black", 2, 3, true, false)},
		Shoes:   []models.Piece{newPiece("black boots", "black", 1, 2, true, false)},
	}
}

func mustEngine(t *testing.T, config Config, closet *models.Closet) *Engine {
	t.Helper()
	engine, err := NewEngine(config, closet, nil)
	require.NoError(t, err)
	return engine
}

func TestNewEngineConfigValidation(t *testing.T) {
	closet := newTestCloset()

	t.Run("warmth out of range", func(t *testing.T) {
		_, err := NewEngine(Config{WarmthLevel: 5}, closet, nil)
		assert.Error(t, err)
	})

	t.Run("comfort out of range", func(t *testing.T) {
		_, err := NewEngine(Config{ComfortLevel: -1}, closet, nil)
		assert.Error(t, err)
	})

	t.Run("unset levels are accepted", func(t *testing.T) {
		_, err := NewEngine(Config{}, closet, nil)
		assert.NoError(t, err)
	})
}

func TestNewEngineResolvesRequiredPiece(t *testing.T) {
	closet := newTestCloset()

	t.Run("known piece resolves", func(t *testing.T) {
		engine, err := NewEngine(Config{RequiredPiece: "black blazer"}, closet, nil)
		require.NoError(t, err)
		assert.True(t, engine.hasRequired)
		assert.Equal(t, models.CategoryJacket, engine.requiredCategory)
	})

	t.Run("unknown piece is a configuration error", func(t *testing.T) {
		_, err := NewEngine(Config{RequiredPiece: "tuxedo"}, closet, nil)
		assert.ErrorIs(t, err, ErrRequiredPieceNotFound)
	})
}

func TestColorMatch(t *testing.T) {
	engine := mustEngine(t, Config{}, newTestCloset())

	t.Run("all neutral colors are valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "gray", 2, 2, false, false),
			models.CategoryJacket: newPiece("j", "white", 2, 2, false, false),
			models.CategoryShoe:   newPiece("s", "tan", 1, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("one non-neutral color is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "red", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "jeanblue", 2, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("same non-neutral color twice is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "red", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "red", 2, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("two distinct non-neutral colors are invalid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "red", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "green", 2, 2, false, false),
		}
		assert.False(t, engine.IsValid(outfit))
	})

	t.Run("empty outfit is valid", func(t *testing.T) {
		assert.True(t, engine.IsValid(models.Outfit{}))
	})
}

func TestSilhouette(t *testing.T) {
	engine := mustEngine(t, Config{}, newTestCloset())

	t.Run("loose top with fitted bottom is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, false, true),
			models.CategoryBottom: newPiece("b", "black", 2, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("loose top and loose bottom are invalid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, false, true),
			models.CategoryBottom: newPiece("b", "black", 2, 2, false, true),
		}
		assert.False(t, engine.IsValid(outfit))
	})

	t.Run("loose top alone is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop: newPiece("t", "black", 1, 2, false, true),
		}
		assert.True(t, engine.IsValid(outfit))
	})
}

func TestWarmthLevel(t *testing.T) {
	engine := mustEngine(t, Config{WarmthLevel: 2}, newTestCloset())

	t.Run("bottom and jacket must match exactly", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryBottom: newPiece("b", "black", 2, 2, false, false),
			models.CategoryJacket: newPiece("j", "black", 2, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))

		outfit[models.CategoryJacket] = newPiece("j", "black", 3, 2, false, false)
		assert.False(t, engine.IsValid(outfit))
	})

	t.Run("tops and shoes are not warmth checked", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:  newPiece("t", "black", 3, 2, false, false),
			models.CategoryShoe: newPiece("s", "black", 1, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("unset level enforces nothing", func(t *testing.T) {
		unconstrained := mustEngine(t, Config{}, newTestCloset())
		outfit := models.Outfit{
			models.CategoryBottom: newPiece("b", "black", 1, 2, false, false),
			models.CategoryJacket: newPiece("j", "black", 3, 2, false, false),
		}
		assert.True(t, unconstrained.IsValid(outfit))
	})
}

func TestComfortLevel(t *testing.T) {
	engine := mustEngine(t, Config{ComfortLevel: 2}, newTestCloset())

	t.Run("all pieces at or above the level are valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:  newPiece("t", "black", 1, 2, false, false),
			models.CategoryShoe: newPiece("s", "black", 1, 3, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("any piece below the level is invalid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:  newPiece("t", "black", 1, 2, false, false),
			models.CategoryShoe: newPiece("s", "black", 1, 1, false, false),
		}
		assert.False(t, engine.IsValid(outfit))
	})
}

func TestFancy(t *testing.T) {
	engine := mustEngine(t, Config{Fancy: true}, newTestCloset())

	t.Run("all fancy pieces are valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, true, false),
			models.CategoryBottom: newPiece("b", "black", 2, 2, true, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("one plain piece is invalid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, true, false),
			models.CategoryBottom: newPiece("b", "black", 2, 2, false, false),
		}
		assert.False(t, engine.IsValid(outfit))
	})
}

func TestRequiredPiece(t *testing.T) {
	engine := mustEngine(t, Config{RequiredPiece: "black blazer"}, newTestCloset())

	t.Run("required category unassigned is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop: newPiece("t", "black", 1, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("required category holding the required piece is valid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryJacket: newPiece("black blazer", "black", 2, 3, true, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("required category holding another piece is invalid", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryJacket: newPiece("parka", "black", 2, 3, false, false),
		}
		assert.False(t, engine.IsValid(outfit))
	})

	t.Run("other categories are unconstrained", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:  newPiece("t", "black", 1, 2, false, false),
			models.CategoryShoe: newPiece("s", "black", 1, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})
}

func TestStyleConfigOverridesNeutralColors(t *testing.T) {
	style := &StyleConfig{NeutralColors: []string{"red"}}
	engine, err := NewEngine(Config{}, newTestCloset(), style)
	require.NoError(t, err)

	t.Run("overridden neutral no longer counts", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "red", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "green", 2, 2, false, false),
		}
		assert.True(t, engine.IsValid(outfit))
	})

	t.Run("default neutrals now count against the limit", func(t *testing.T) {
		outfit := models.Outfit{
			models.CategoryTop:    newPiece("t", "black", 1, 2, false, false),
			models.CategoryBottom: newPiece("b", "white", 2, 2, false, false),
		}
		assert.False(t, engine.IsValid(outfit))
	})
}
