package models

// Outfit represents an assignment of pieces to categories. A partial outfit
// holds a subset of the categories; a complete outfit holds all four.
type Outfit map[Category]Piece

// Complete reports whether every category has an assigned piece
func (o Outfit) Complete() bool {
	return len(o) == len(Categories)
}

// Names returns the assigned piece names in fixed category order
func (o Outfit) Names() []string {
	names := make([]string, 0, len(o))
	for _, category := range Categories {
		if piece, ok := o[category]; ok {
			names = append(names, piece.Name)
		}
	}
	return names
}

// Filenames returns the assigned piece image filenames in fixed category order
func (o Outfit) Filenames() []string {
	filenames := make([]string, 0, len(o))
	for _, category := range Categories {
		if piece, ok := o[category]; ok {
			filenames = append(filenames, piece.Filename)
		}
	}
	return filenames
}
