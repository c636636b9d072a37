package models

import (
	"fmt"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golangdaddy/showroom/models/car"
)

// inventoryFile is the TOML layout of an inventory file
type inventoryFile struct {
	Cars []inventoryEntry `toml:"car"`
}

type inventoryEntry struct {
	Brand string `toml:"brand"`
	Year  int    `toml:"year"`
	Speed int    `toml:"speed"`
}

// defaultLineup is the inventory used when no file is configured
var defaultLineup = []inventoryEntry{
	{Brand: "Toyota", Year: 2020},
	{Brand: "Ferrari", Year: 1985},
	{Brand: "Ford", Year: 2022},
	{Brand: "McLaren", Year: 1993},
	{Brand: "Chevrolet", Year: 1970},
}

// LoadInventory reads a TOML inventory file into a new garage.
// Unknown keys in the file are rejected.
func LoadInventory(path string, capacity int) (*Garage, error) {
	var file inventoryFile
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("inventory %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}

	garage, err := buildGarage(file.Cars, capacity)
	if err != nil {
		return nil, fmt.Errorf("inventory %s: %w", path, err)
	}

	log.Printf("Loaded inventory %s: %d cars", path, garage.GetCarCount())
	return garage, nil
}

// DefaultInventory returns a garage stocked with the built-in lineup
func DefaultInventory(capacity int) (*Garage, error) {
	return buildGarage(defaultLineup, capacity)
}

func buildGarage(entries []inventoryEntry, capacity int) (*Garage, error) {
	garage := NewGarage(capacity)
	for i, entry := range entries {
		c := car.NewCar(entry.Brand)
		c.Year = entry.Year
		c.Accelerate(entry.Speed)
		if err := garage.AddCar(c); err != nil {
			return nil, fmt.Errorf("car %d (%s): %w", i, entry.Brand, err)
		}
	}
	return garage, nil
}
