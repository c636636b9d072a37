package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// fontFace is the bitmap font used for all showroom text (16px tall)
var fontFace = text.NewGoXFace(bitmapfont.Face)

// drawRow draws a list row with background, border and left-aligned text
func drawRow(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	rowImg := ebiten.NewImage(int(width), int(height))
	rowImg.Fill(bgColor)

	// 2px border
	borderColor := color.RGBA{80, 80, 100, 255}
	w, h := int(width), int(height)
	for i := 0; i < w; i++ {
		for j := 0; j < 2; j++ {
			rowImg.Set(i, j, borderColor)
			rowImg.Set(i, h-1-j, borderColor)
		}
	}
	for i := 0; i < h; i++ {
		for j := 0; j < 2; j++ {
			rowImg.Set(j, i, borderColor)
			rowImg.Set(w-1-j, i, borderColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(rowImg, op)

	// Baseline sits ~8px above the vertical center for the bitmap font
	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(x+12, y+height/2-8)
	textOp.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, fontFace, textOp)
}

// drawText draws text centered at (centerX, centerY), scaled to size pixels tall
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textX := centerX - text.Advance(str, fontFace)*scale/2
	textY := centerY - 16.0*scale/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, fontFace, op)
}
