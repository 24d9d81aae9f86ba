package service

import (
	"errors"
	"log"
	"math/rand"

	"github.com/kelseymakesthings/auto-outfit/models"
	"github.com/kelseymakesthings/auto-outfit/policy"
	"github.com/kelseymakesthings/auto-outfit/utils"
)

// ErrNoValidOutfit is returned when the search space is exhausted without
// finding a complete outfit that satisfies the active constraints. Not a
// retryable condition: the closet/constraint pairing has no solution.
var ErrNoValidOutfit = errors.New("outfit cannot be generated with existing closet and constraints")

// candidate pairs a category with one of its pieces on the search stack
type candidate struct {
	category models.Category
	piece    models.Piece
}

// OutfitService generates outfits via randomized depth-first backtracking
// over the fixed category order, pruning partial assignments with the policy
// engine.
type OutfitService struct {
	policy *policy.Engine
	closet *models.Closet
	rng    *rand.Rand
}

// NewOutfitService creates a new outfit service. The rand source controls
// candidate ordering; pass a seeded source for reproducible runs.
func NewOutfitService(policyEngine *policy.Engine, closet *models.Closet, rng *rand.Rand) *OutfitService {
	return &OutfitService{
		policy: policyEngine,
		closet: closet,
		rng:    rng,
	}
}

// Generate returns the first complete outfit that satisfies the policy, or
// ErrNoValidOutfit when the search exhausts the whole space. Each call
// shuffles its own copy of the candidate lists, so repeated runs explore a
// different order without ever mutating the closet.
func (s *OutfitService) Generate() (models.Outfit, error) {
	shuffled := make(map[models.Category][]models.Piece, len(models.Categories))
	for _, category := range models.Categories {
		shuffled[category] = utils.Shuffled(s.rng, s.closet.Pieces(category))
	}

	first := models.Categories[0]
	stack := make([]candidate, 0, len(shuffled[first]))
	for _, piece := range shuffled[first] {
		stack = append(stack, candidate{category: first, piece: piece})
	}

	outfit := models.Outfit{}
	evaluated := 0
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Tentative assignment; undone below if the policy rejects it
		outfit[next.category] = next.piece
		evaluated++

		if !s.policy.IsValid(outfit) {
			delete(outfit, next.category)
			continue
		}
		if outfit.Complete() {
			log.Printf("✅ OutfitService: Found valid outfit after %d evaluations", evaluated)
			return outfit, nil
		}

		// Valid but incomplete: explore the next category depth-first before
		// returning to a sibling of the current piece (LIFO order)
		following, ok := next.category.Next()
		if !ok {
			continue
		}
		for _, piece := range shuffled[following] {
			stack = append(stack, candidate{category: following, piece: piece})
		}
	}

	return nil, ErrNoValidOutfit
}
