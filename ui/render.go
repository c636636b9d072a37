package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	carWidth  = 30.0
	carHeight = 50.0
)

// renderCar renders a top-down view of a car centered at (x, y), bonnet up
func renderCar(screen *ebiten.Image, x, y float64, carColor color.Color) {
	carImg := ebiten.NewImage(int(carWidth), int(carHeight))
	carImg.Fill(carColor)

	// Outline
	outlineColor := color.RGBA{20, 20, 20, 255}
	outline := 2.0
	fillRect(carImg, 0, 0, carWidth, outline, outlineColor)
	fillRect(carImg, 0, carHeight-outline, carWidth, outline, outlineColor)
	fillRect(carImg, 0, 0, outline, carHeight, outlineColor)
	fillRect(carImg, carWidth-outline, 0, outline, carHeight, outlineColor)

	// Windshield at the front
	windshieldWidth := carWidth * 0.6
	fillRect(carImg, (carWidth-windshieldWidth)/2, 0, windshieldWidth, carHeight*0.2, color.RGBA{150, 200, 255, 200})

	// Wheels
	wheelColor := color.RGBA{30, 30, 30, 255}
	wheelWidth, wheelHeight := 6.0, 8.0
	fillRect(carImg, 2, 5, wheelWidth, wheelHeight, wheelColor)
	fillRect(carImg, carWidth-wheelWidth-2, 5, wheelWidth, wheelHeight, wheelColor)
	fillRect(carImg, 2, carHeight-wheelHeight-5, wheelWidth, wheelHeight, wheelColor)
	fillRect(carImg, carWidth-wheelWidth-2, carHeight-wheelHeight-5, wheelWidth, wheelHeight, wheelColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-carWidth/2, y-carHeight/2)
	screen.DrawImage(carImg, op)
}

// renderGauge draws a horizontal speed bar scaled against the fastest car.
// Negative speeds fill in red.
func renderGauge(screen *ebiten.Image, x, y, width, height float64, speed, fastest int) {
	fillRect(screen, x, y, width, height, color.RGBA{40, 40, 60, 255})

	fill := color.RGBA{80, 200, 120, 255}
	if speed < 0 {
		fill = color.RGBA{200, 80, 80, 255}
	}
	fraction := 0.0
	if fastest > 0 {
		fraction = math.Abs(float64(speed)) / float64(fastest)
	}
	fraction = math.Min(math.Max(fraction, 0), 1)
	if fraction > 0 {
		fillRect(screen, x, y, width*fraction, height, fill)
	}
}

// fillRect fills a rectangle on dst
func fillRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	if width < 1 || height < 1 {
		return
	}
	rect := ebiten.NewImage(int(width), int(height))
	rect.Fill(clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(rect, op)
}
