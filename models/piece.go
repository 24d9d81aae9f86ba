package models

// PieceAttributes represents the style attributes of a single piece
type PieceAttributes struct {
	Color   string `json:"color"`
	Warmth  int    `json:"warmth"`
	Comfort int    `json:"comfort"`
	Fancy   bool   `json:"fancy"`
	Loose   bool   `json:"loose"`
}

// Piece represents a single wearable item in the closet. The name is unique
// within its category; the filename points into the images directory.
type Piece struct {
	Name       string          `json:"name"`
	Filename   string          `json:"filename"`
	Attributes PieceAttributes `json:"attributes"`
}
