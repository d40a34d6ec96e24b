package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func loadFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

var (
	buttonImage = &widget.ButtonImage{
		Idle:    solidNineSlice(color.RGBA{60, 60, 72, 255}),
		Hover:   solidNineSlice(color.RGBA{84, 84, 100, 255}),
		Pressed: solidNineSlice(color.RGBA{40, 40, 120, 255}),
	}
	buttonTextColor = &widget.ButtonTextColor{
		Idle:     color.White,
		Hover:    color.White,
		Pressed:  color.RGBA{255, 220, 120, 255},
		Disabled: color.Gray{Y: 128},
	}
)
