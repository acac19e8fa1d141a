package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/jose-valero/kino-bot/internal/domain"
)

// SwatchSize: lado en px de cada color en la imagen.
const SwatchSize = 100

type PaletteService struct {
	api PaletteAPI
}

func NewPaletteService(api PaletteAPI) *PaletteService { return &PaletteService{api: api} }

// Generate pide una paleta y la devuelve también como PNG (una franja por color).
func (s *PaletteService) Generate(ctx context.Context) ([]byte, domain.Palette, error) {
	p, err := s.api.Palette(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(p) == 0 {
		return nil, nil, ErrNoResults
	}
	img, err := RenderSwatches(p)
	if err != nil {
		return nil, nil, err
	}
	return img, p, nil
}

func RenderSwatches(p domain.Palette) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, SwatchSize*len(p), SwatchSize))
	for i, c := range p {
		r := image.Rect(i*SwatchSize, 0, (i+1)*SwatchSize, SwatchSize)
		fill := color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
		draw.Draw(img, r, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
