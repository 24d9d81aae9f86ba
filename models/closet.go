package models

// Closet represents the full catalog of available pieces per category.
// Loaded once from the catalog file and read-only thereafter.
type Closet struct {
	Tops    []Piece `json:"tops"`
	Bottoms []Piece `json:"bottoms"`
	Jackets []Piece `json:"jackets"`
	Shoes   []Piece `json:"shoes"`
}

// Pieces returns the pieces available for the given category
func (c *Closet) Pieces(category Category) []Piece {
	switch category {
	case CategoryTop:
		return c.Tops
	case CategoryBottom:
		return c.Bottoms
	case CategoryJacket:
		return c.Jackets
	case CategoryShoe:
		return c.Shoes
	}
	return nil
}

// FindPiece looks up a piece by name across all categories in placement
// order. Returns the piece, its category and whether it was found.
func (c *Closet) FindPiece(name string) (Piece, Category, bool) {
	for _, category := range Categories {
		for _, piece := range c.Pieces(category) {
			if piece.Name == name {
				return piece, category, true
			}
		}
	}
	return Piece{}, 0, false
}
