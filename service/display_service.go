package service

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/kelseymakesthings/auto-outfit/models"
)

// DisplayService composes the chosen piece images into a single picture
type DisplayService struct {
	imagesPath string
	outputPath string
}

// NewDisplayService creates a display service reading piece images from
// imagesPath and writing the composed outfit to outputPath
func NewDisplayService(imagesPath, outputPath string) *DisplayService {
	return &DisplayService{
		imagesPath: imagesPath,
		outputPath: outputPath,
	}
}

// Render loads the outfit's piece images in fixed category order,
// concatenates them horizontally on a white canvas, rotates the strip into
// display orientation and writes the result to the output path. Any missing
// or undecodable image is fatal and propagates unmodified.
func (d *DisplayService) Render(outfit models.Outfit) (string, error) {
	filenames := outfit.Filenames()

	images := make([]image.Image, 0, len(filenames))
	totalWidth := 0
	maxHeight := 0
	for _, filename := range filenames {
		img, err := imaging.Open(filepath.Join(d.imagesPath, filename))
		if err != nil {
			return "", fmt.Errorf("failed to open piece image %s: %w", filename, err)
		}
		bounds := img.Bounds()
		totalWidth += bounds.Dx()
		if bounds.Dy() > maxHeight {
			maxHeight = bounds.Dy()
		}
		images = append(images, img)
	}

	log.Printf("📸 DisplayService: Composing %d piece images (%dx%d strip)", len(images), totalWidth, maxHeight)

	strip := imaging.New(totalWidth, maxHeight, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	x := 0
	for _, img := range images {
		strip = imaging.Paste(strip, img, image.Pt(x, 0))
		x += img.Bounds().Dx()
	}

	// Rotate 90 degrees clockwise so the outfit reads top to bottom
	rotated := imaging.Rotate270(strip)

	if dir := filepath.Dir(d.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(rotated, d.outputPath); err != nil {
		return "", fmt.Errorf("failed to save outfit image: %w", err)
	}

	log.Printf("✓ Outfit image saved: %s", d.outputPath)
	return d.outputPath, nil
}
