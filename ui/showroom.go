package ui

import (
	"image/color"

	"github.com/golangdaddy/showroom/models"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Showroom is the screen listing the garage's cars
type Showroom struct {
	garage *models.Garage
	step   int // Speed change per key press
}

// NewShowroom creates a showroom screen for the garage
func NewShowroom(garage *models.Garage, step int) *Showroom {
	return &Showroom{
		garage: garage,
		step:   step,
	}
}

// Update handles input for the showroom
func (s *Showroom) Update() error {
	count := s.garage.GetCarCount()
	if count == 0 {
		return nil
	}

	// Selection wraps around
	selected := s.garage.ActiveCar
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		selected = (selected - 1 + count) % count
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		selected = (selected + 1) % count
	}
	if selected != s.garage.ActiveCar {
		if err := s.garage.SetActiveCar(selected); err != nil {
			return err
		}
	}

	active := s.garage.GetActiveCar()
	if active == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		active.Accelerate(s.step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		active.Accelerate(-s.step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if active.IsRunning() {
			active.StopEngine()
		} else {
			active.StartEngine()
		}
	}

	return nil
}

// Draw renders the showroom
func (s *Showroom) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2

	screen.Fill(color.RGBA{20, 20, 30, 255})
	drawText(screen, "SHOWROOM", centerX, 40, 48, color.RGBA{255, 200, 50, 255})

	cars := s.garage.GetAllCars()
	if len(cars) == 0 {
		drawText(screen, "No cars in the garage", centerX, float64(height)/2, 24, color.RGBA{255, 255, 255, 255})
		return
	}

	startY := 90.0
	rowSpacing := 60.0
	rowWidth := float64(width) - 80
	rowHeight := 54.0
	rowX := 40.0
	fastest := s.garage.FastestSpeed()

	for i, c := range cars {
		rowY := startY + float64(i)*rowSpacing

		bgColor := color.RGBA{40, 40, 60, 255}
		textColor := color.RGBA{255, 255, 255, 255}
		if i == s.garage.ActiveCar {
			bgColor = color.RGBA{60, 100, 140, 255}
			textColor = color.RGBA{200, 240, 255, 255}
		}

		drawRow(screen, c.String(), rowX, rowY, rowWidth, rowHeight, bgColor, textColor)
		renderGauge(screen, rowX+rowWidth-140, rowY+rowHeight/2-5, 90, 10, c.Speed(), fastest)

		carColor := color.RGBA{120, 120, 130, 255}
		if c.IsRunning() {
			carColor = color.RGBA{220, 60, 60, 255}
		}
		renderCar(screen, rowX+rowWidth-25, rowY+rowHeight/2, carColor)
	}

	drawText(screen, "Up/Down: Select | Left/Right: Speed | Enter: Engine", centerX, float64(height)-30, 16, color.RGBA{150, 150, 150, 255})
}
