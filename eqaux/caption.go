package eqaux

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/soypat/equilibrium"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	captionFontSize = 12
	captionDPI      = 72
	captionPad      = 4
)

var captionBackground = color.NRGBA{A: 160}

// Captioner stamps status text onto images.
type Captioner struct {
	font *truetype.Font
}

// NewCaptioner parses the embedded Go Regular font.
func NewCaptioner() (*Captioner, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing caption font: %w", err)
	}
	return &Captioner{font: f}, nil
}

// Stamp draws text in white over a translucent bar along the bottom of img.
func (c *Captioner) Stamp(img draw.Image, text string) error {
	bounds := img.Bounds()
	barHeight := captionFontSize + 2*captionPad
	bar := image.Rect(bounds.Min.X, bounds.Max.Y-barHeight, bounds.Max.X, bounds.Max.Y).Intersect(bounds)
	if bar.Empty() {
		return nil
	}
	draw.Draw(img, bar, image.NewUniform(captionBackground), image.Point{}, draw.Over)

	ctx := freetype.NewContext()
	ctx.SetDPI(captionDPI)
	ctx.SetFont(c.font)
	ctx.SetFontSize(captionFontSize)
	ctx.SetClip(bar)
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	_, err := ctx.DrawString(text, freetype.Pt(bar.Min.X+captionPad, bar.Max.Y-captionPad))
	return err
}

// SceneCaption summarizes the scene state shown in a screenshot.
func SceneCaption(s *equilibrium.SceneState) string {
	return fmt.Sprintf("shader=%s speed=%.3f clock=%.3f selected=%s",
		s.Shader, s.Speed, s.Clock.Value, s.Objects[s.Selected].Shape)
}
