package game

import (
	"maps"
	"math"
	"slices"
)

// ProductKind identifies a tradeable good. Each planet produces exactly one.
type ProductKind uint8

const (
	ProductSpice ProductKind = iota
	ProductMinerals
	ProductBiomatter
	ProductKindCount // sentinel
)

var productNames = [ProductKindCount]string{
	ProductSpice:     "Spice",
	ProductMinerals:  "Minerals",
	ProductBiomatter: "Biomatter",
}

// Name returns the display name for a product kind.
func (k ProductKind) Name() string {
	if k < ProductKindCount {
		return productNames[k]
	}
	return "Unknown"
}

func (k ProductKind) String() string { return k.Name() }

// AllProducts returns every product kind in declaration order.
func AllProducts() []ProductKind {
	list := make([]ProductKind, 0, ProductKindCount)
	for k := ProductKind(0); k < ProductKindCount; k++ {
		list = append(list, k)
	}
	return list
}

// Economy constants.
const (
	BuyProductPrice  = 20
	SellProductPrice = 23
	FuelPrice        = 5 // per unit of fuel
	FoodPrice        = 3 // per unit of food
	FuelBuyAmount    = 10.0
	FoodBuyAmount    = 1
	CargoCapacity    = 100 // shared by cargo, fuel and food
)

// Starting resources and consumption rates.
const (
	StartingFuel            = 50.0
	StartingFood            = 30
	StartingMoney           = 100
	FuelConsumptionPerSec   = 0.5 // while moving
	FoodConsumptionInterval = 5.0 // seconds between meals
	FoodConsumedPerInterval = 1
)

// Inventory is the ship's ledger. Cargo, fuel and food share one hold.
// Money is not clamped here; purchases are gated by the trade layer.
type Inventory struct {
	Cargo map[ProductKind]int
	Fuel  float64
	Food  int
	Money int

	capacity  int
	sellPrice int
}

// NewInventory creates the starting ledger for a fresh ship.
func NewInventory(b Balance) Inventory {
	return Inventory{
		Cargo:     make(map[ProductKind]int),
		Fuel:      b.StartingFuel,
		Food:      b.StartingFood,
		Money:     b.StartingMoney,
		capacity:  b.CargoCapacity,
		sellPrice: b.SellProductPrice,
	}
}

// Capacity returns the total units the hold can carry.
func (inv *Inventory) Capacity() int { return inv.capacity }

// CargoUnits returns the sum of all cargo quantities.
func (inv *Inventory) CargoUnits() int {
	n := 0
	for _, q := range inv.Cargo {
		n += q
	}
	return n
}

// TotalOccupied returns cargo units plus ceil(fuel) plus food.
func (inv *Inventory) TotalOccupied() int {
	return inv.CargoUnits() + int(math.Ceil(inv.Fuel)) + inv.Food
}

// AvailableSpace returns how many more units fit in the hold.
func (inv *Inventory) AvailableSpace() int {
	return inv.capacity - inv.TotalOccupied()
}

// Quantity returns how many units of kind are held.
func (inv *Inventory) Quantity(kind ProductKind) int {
	return inv.Cargo[kind]
}

// AddCargo stores amount units of kind. Fails without mutation if the hold
// lacks room or amount is not positive.
func (inv *Inventory) AddCargo(kind ProductKind, amount int) bool {
	if amount <= 0 || inv.AvailableSpace() < amount {
		return false
	}
	if inv.Cargo == nil {
		inv.Cargo = make(map[ProductKind]int)
	}
	inv.Cargo[kind] += amount
	return true
}

// RemoveCargo takes amount units of kind out of the hold. Fails without
// mutation if fewer are held or amount is not positive. A kind that drops to
// zero leaves the map.
func (inv *Inventory) RemoveCargo(kind ProductKind, amount int) bool {
	if amount <= 0 {
		return false
	}
	current, ok := inv.Cargo[kind]
	if !ok || current < amount {
		return false
	}
	current -= amount
	if current == 0 {
		delete(inv.Cargo, kind)
	} else {
		inv.Cargo[kind] = current
	}
	return true
}

// SellAllCargo sells every kind except excluded, which the buying planet
// produces itself. Returns the money credited.
func (inv *Inventory) SellAllCargo(excluded ProductKind) int {
	earned := 0
	for kind, q := range inv.Cargo {
		if kind == excluded {
			continue
		}
		earned += q * inv.sellPrice
		delete(inv.Cargo, kind)
	}
	inv.Money += earned
	return earned
}

// Kinds returns the held product kinds in declaration order.
func (inv *Inventory) Kinds() []ProductKind {
	kinds := slices.Collect(maps.Keys(inv.Cargo))
	slices.Sort(kinds)
	return kinds
}

// Snapshot returns a deep copy safe to hand to the presentation layer.
func (inv *Inventory) Snapshot() Inventory {
	cp := *inv
	cp.Cargo = maps.Clone(inv.Cargo)
	if cp.Cargo == nil {
		cp.Cargo = make(map[ProductKind]int)
	}
	return cp
}
