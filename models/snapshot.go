package models

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golangdaddy/showroom/models/car"
)

// Snapshot is the saved state of a showroom session
type Snapshot struct {
	CreatedAt time.Time `json:"created_at"` // When the session was started
	SavedAt   time.Time `json:"saved_at"`   // When the snapshot was last written
	Garage    *Garage   `json:"garage"`
}

// NewSnapshot creates a snapshot of the given garage
func NewSnapshot(garage *Garage) *Snapshot {
	now := time.Now()
	return &Snapshot{
		CreatedAt: now,
		SavedAt:   now,
		Garage:    garage,
	}
}

// SaveToFile saves the snapshot to a JSON file
func (s *Snapshot) SaveToFile(filename string) error {
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Printf("Saved snapshot %s (%s)", filename, s.Garage)
	return nil
}

// LoadSnapshot loads a snapshot from a JSON file
func LoadSnapshot(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", filename, err)
	}
	if s.Garage == nil {
		s.Garage = NewGarage(0)
	}
	cars := make([]*car.Car, 0, len(s.Garage.Cars))
	for _, c := range s.Garage.Cars {
		if c != nil {
			cars = append(cars, c)
		}
	}
	s.Garage.Cars = cars
	if s.Garage.GetActiveCar() == nil {
		s.Garage.ActiveCar = -1
		if len(s.Garage.Cars) > 0 {
			s.Garage.ActiveCar = 0
		}
	}

	log.Printf("Loaded snapshot %s (%s)", filename, s.Garage)
	return &s, nil
}
