package models

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/showroom/models/car"
)

var (
	// ErrGarageFull is returned when adding a car to a garage at capacity
	ErrGarageFull = errors.New("garage is at capacity")
	// ErrNilCar is returned when adding a nil car
	ErrNilCar = errors.New("cannot add nil car")
	// ErrInvalidIndex is returned for an out of range car index
	ErrInvalidIndex = errors.New("invalid car index")
)

// Garage represents a collection of cars that can be stored and retrieved
type Garage struct {
	Cars      []*car.Car `json:"cars"`       // Slice of cars in the garage
	Capacity  int        `json:"capacity"`   // Maximum number of cars (0 = unlimited)
	ActiveCar int        `json:"active_car"` // Index of the currently active/selected car (-1 if none)
}

// NewGarage creates a new garage with optional capacity limit
// If capacity is 0, the garage has unlimited capacity
func NewGarage(capacity int) *Garage {
	return &Garage{
		Cars:      make([]*car.Car, 0),
		Capacity:  capacity,
		ActiveCar: -1,
	}
}

// AddCar adds a car to the garage
// Returns an error if the garage is at capacity
func (g *Garage) AddCar(c *car.Car) error {
	if c == nil {
		return ErrNilCar
	}
	if g.IsFull() {
		return ErrGarageFull
	}
	g.Cars = append(g.Cars, c)

	// If this is the first car, set it as active
	if len(g.Cars) == 1 {
		g.ActiveCar = 0
	}

	return nil
}

// RemoveCar removes a car from the garage by index
func (g *Garage) RemoveCar(index int) error {
	if index < 0 || index >= len(g.Cars) {
		return fmt.Errorf("remove car %d: %w", index, ErrInvalidIndex)
	}

	g.Cars = append(g.Cars[:index], g.Cars[index+1:]...)

	// Keep the active index on the same car, or clamp it
	if g.ActiveCar >= len(g.Cars) {
		g.ActiveCar = len(g.Cars) - 1
	} else if g.ActiveCar > index {
		g.ActiveCar--
	}

	return nil
}

// GetCar retrieves a car by index
// Returns nil if the index is invalid
func (g *Garage) GetCar(index int) *car.Car {
	if index < 0 || index >= len(g.Cars) {
		return nil
	}
	return g.Cars[index]
}

// GetActiveCar returns the currently active car
// Returns nil if no car is active
func (g *Garage) GetActiveCar() *car.Car {
	return g.GetCar(g.ActiveCar)
}

// SetActiveCar sets the active car by index
func (g *Garage) SetActiveCar(index int) error {
	if index < 0 || index >= len(g.Cars) {
		return fmt.Errorf("select car %d: %w", index, ErrInvalidIndex)
	}
	g.ActiveCar = index
	return nil
}

// FindCarByBrand returns the first car with the given brand and its index, or nil and -1
func (g *Garage) FindCarByBrand(brand string) (*car.Car, int) {
	for i, c := range g.Cars {
		if c.Brand() == brand {
			return c, i
		}
	}
	return nil, -1
}

// GetAllCars returns all cars in the garage
func (g *Garage) GetAllCars() []*car.Car {
	return g.Cars
}

// GetCarCount returns the number of cars in the garage
func (g *Garage) GetCarCount() int {
	return len(g.Cars)
}

// FastestSpeed returns the highest current speed in the garage, 0 if empty
func (g *Garage) FastestSpeed() int {
	fastest := 0
	for i, c := range g.Cars {
		if i == 0 || c.Speed() > fastest {
			fastest = c.Speed()
		}
	}
	return fastest
}

// IsFull returns true if the garage is at capacity
func (g *Garage) IsFull() bool {
	if g.Capacity == 0 {
		return false
	}
	return len(g.Cars) >= g.Capacity
}

// GetRemainingSlots returns the number of remaining slots in the garage
// Returns -1 if capacity is unlimited
func (g *Garage) GetRemainingSlots() int {
	if g.Capacity == 0 {
		return -1
	}
	remaining := g.Capacity - len(g.Cars)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear removes all cars from the garage
func (g *Garage) Clear() {
	g.Cars = make([]*car.Car, 0)
	g.ActiveCar = -1
}

// String returns a string representation of the garage
func (g *Garage) String() string {
	countStr := fmt.Sprintf("%d", len(g.Cars))
	if g.Capacity > 0 {
		countStr = fmt.Sprintf("%d/%d", len(g.Cars), g.Capacity)
	}

	activeStr := "none"
	if active := g.GetActiveCar(); active != nil {
		activeStr = active.Brand()
	}

	return fmt.Sprintf("Garage: %s cars, Active: %s", countStr, activeStr)
}
