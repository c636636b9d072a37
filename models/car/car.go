package car

import (
	"encoding/json"
	"fmt"
	"log"
)

// Car represents a vehicle in the showroom
type Car struct {
	// Year of manufacture, 0 when unknown
	Year int

	brand   string // fixed at construction
	speed   int    // current speed in km/h
	running bool   // engine status
}

// NewCar creates a new car with the given brand, standing still with the engine off.
// Any brand is accepted, including the empty string.
func NewCar(brand string) *Car {
	return &Car{
		brand: brand,
		speed: 0,
	}
}

// Brand returns the brand the car was created with
func (c *Car) Brand() string {
	return c.brand
}

// Speed returns the current speed
func (c *Car) Speed() int {
	return c.speed
}

// Accelerate adds value to the current speed.
// Negative values slow the car down and nothing stops speed going below zero.
func (c *Car) Accelerate(value int) {
	c.speed += value
}

// StartEngine starts the engine.
// Returns false if the engine was already running.
func (c *Car) StartEngine() bool {
	if c.running {
		return false
	}
	c.running = true
	log.Printf("%s engine started.", c.brand)
	return true
}

// StopEngine stops the engine if it is running
func (c *Car) StopEngine() {
	if !c.running {
		return
	}
	c.running = false
	log.Printf("%s engine stopped.", c.brand)
}

// IsRunning reports whether the engine is running
func (c *Car) IsRunning() bool {
	return c.running
}

// String formats the car for display, e.g. "Toyota (2020) - 25 km/h [running]"
func (c *Car) String() string {
	engine := "stopped"
	if c.running {
		engine = "running"
	}
	if c.Year > 0 {
		return fmt.Sprintf("%s (%d) - %d km/h [%s]", c.brand, c.Year, c.speed, engine)
	}
	return fmt.Sprintf("%s - %d km/h [%s]", c.brand, c.speed, engine)
}

// carJSON is the persisted form of a Car
type carJSON struct {
	Brand   string `json:"brand"`
	Year    int    `json:"year,omitempty"`
	Speed   int    `json:"speed"`
	Running bool   `json:"running"`
}

// MarshalJSON encodes the car including its unexported state
func (c *Car) MarshalJSON() ([]byte, error) {
	return json.Marshal(carJSON{
		Brand:   c.brand,
		Year:    c.Year,
		Speed:   c.speed,
		Running: c.running,
	})
}

// UnmarshalJSON rebuilds a car from its persisted form.
// Speed is restored through Accelerate and the engine state is restored silently.
func (c *Car) UnmarshalJSON(data []byte) error {
	var raw carJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	restored := NewCar(raw.Brand)
	restored.Year = raw.Year
	restored.Accelerate(raw.Speed)
	restored.running = raw.Running
	*c = *restored
	return nil
}
