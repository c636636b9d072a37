package models

import (
	"testing"

	"github.com/golangdaddy/showroom/models/car"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockedGarage(t *testing.T, capacity int, brands ...string) *Garage {
	t.Helper()
	g := NewGarage(capacity)
	for _, b := range brands {
		require.NoError(t, g.AddCar(car.NewCar(b)))
	}
	return g
}

func TestNewGarage(t *testing.T) {
	g := NewGarage(3)
	assert.Empty(t, g.GetAllCars())
	assert.Equal(t, -1, g.ActiveCar)
	assert.Nil(t, g.GetActiveCar())
	assert.Equal(t, 3, g.GetRemainingSlots())
	assert.Equal(t, "Garage: 0/3 cars, Active: none", g.String())
}

func TestAddCar(t *testing.T) {
	t.Run("FirstCarBecomesActive", func(t *testing.T) {
		g := stockedGarage(t, 0, "Toyota", "Honda")
		assert.Equal(t, 0, g.ActiveCar)
		assert.Equal(t, "Toyota", g.GetActiveCar().Brand())
		assert.Equal(t, 2, g.GetCarCount())
	})

	t.Run("Nil", func(t *testing.T) {
		g := NewGarage(0)
		assert.ErrorIs(t, g.AddCar(nil), ErrNilCar)
	})

	t.Run("Capacity", func(t *testing.T) {
		g := stockedGarage(t, 2, "A", "B")
		assert.True(t, g.IsFull())
		assert.Equal(t, 0, g.GetRemainingSlots())
		assert.ErrorIs(t, g.AddCar(car.NewCar("C")), ErrGarageFull)
		assert.Equal(t, 2, g.GetCarCount())
	})

	t.Run("Unlimited", func(t *testing.T) {
		g := stockedGarage(t, 0, "A", "B", "C")
		assert.False(t, g.IsFull())
		assert.Equal(t, -1, g.GetRemainingSlots())
	})
}

func TestRemoveCar(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive int
		wantBrand  string
	}{
		{"BeforeActive", 2, 0, 1, "C"},
		{"AfterActive", 0, 2, 0, "A"},
		{"ActiveItself", 1, 1, 1, "C"},
		{"ActiveLast", 2, 2, 1, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := stockedGarage(t, 0, "A", "B", "C")
			require.NoError(t, g.SetActiveCar(tt.active))
			require.NoError(t, g.RemoveCar(tt.remove))
			assert.Equal(t, tt.wantActive, g.ActiveCar)
			assert.Equal(t, tt.wantBrand, g.GetActiveCar().Brand())
		})
	}

	t.Run("LastCar", func(t *testing.T) {
		g := stockedGarage(t, 0, "A")
		require.NoError(t, g.RemoveCar(0))
		assert.Equal(t, -1, g.ActiveCar)
		assert.Nil(t, g.GetActiveCar())
	})

	t.Run("InvalidIndex", func(t *testing.T) {
		g := stockedGarage(t, 0, "A")
		assert.ErrorIs(t, g.RemoveCar(1), ErrInvalidIndex)
		assert.ErrorIs(t, g.RemoveCar(-1), ErrInvalidIndex)
	})
}

func TestSelectAndFind(t *testing.T) {
	g := stockedGarage(t, 0, "Toyota", "Ford", "Toyota")

	require.NoError(t, g.SetActiveCar(1))
	assert.Equal(t, "Ford", g.GetActiveCar().Brand())
	assert.ErrorIs(t, g.SetActiveCar(3), ErrInvalidIndex)
	assert.Equal(t, 1, g.ActiveCar)

	c, idx := g.FindCarByBrand("Toyota")
	require.NotNil(t, c)
	assert.Equal(t, 0, idx)
	assert.Same(t, g.GetCar(0), c)

	c, idx = g.FindCarByBrand("Lada")
	assert.Nil(t, c)
	assert.Equal(t, -1, idx)

	assert.Nil(t, g.GetCar(-1))
	assert.Nil(t, g.GetCar(3))
}

func TestFastestSpeed(t *testing.T) {
	assert.Equal(t, 0, NewGarage(0).FastestSpeed())

	g := stockedGarage(t, 0, "A", "B", "C")
	g.GetCar(0).Accelerate(40)
	g.GetCar(1).Accelerate(90)
	g.GetCar(2).Accelerate(-10)
	assert.Equal(t, 90, g.FastestSpeed())

	slow := stockedGarage(t, 0, "A")
	slow.GetCar(0).Accelerate(-5)
	assert.Equal(t, -5, slow.FastestSpeed())
}

func TestClearAndString(t *testing.T) {
	g := stockedGarage(t, 5, "Toyota", "Ford")
	assert.Equal(t, "Garage: 2/5 cars, Active: Toyota", g.String())

	g.Clear()
	assert.Zero(t, g.GetCarCount())
	assert.Equal(t, -1, g.ActiveCar)
	assert.Equal(t, "Garage: 0/5 cars, Active: none", g.String())

	assert.Equal(t, "Garage: 2 cars, Active: A", stockedGarage(t, 0, "A", "B").String())
}
