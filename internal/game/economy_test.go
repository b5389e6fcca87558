package game

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func newTestInventory() Inventory {
	return NewInventory(DefaultBalance())
}

func TestNewInventoryStartingValues(t *testing.T) {
	inv := newTestInventory()
	if inv.Fuel != 50 || inv.Food != 30 || inv.Money != 100 {
		t.Fatalf("unexpected start: fuel=%g food=%d money=%d", inv.Fuel, inv.Food, inv.Money)
	}
	if len(inv.Cargo) != 0 {
		t.Fatalf("expected empty cargo, got %v", inv.Cargo)
	}
	if got := inv.TotalOccupied(); got != 80 {
		t.Fatalf("expected 80 occupied, got %d", got)
	}
	if got := inv.AvailableSpace(); got != 20 {
		t.Fatalf("expected 20 available, got %d", got)
	}
}

func TestTotalOccupiedRoundsFuelUp(t *testing.T) {
	inv := newTestInventory()
	inv.Fuel = 49.2
	inv.Cargo[ProductMinerals] = 3
	if got := inv.TotalOccupied(); got != 3+50+30 {
		t.Fatalf("expected 83 occupied, got %d", got)
	}
	if got := inv.AvailableSpace(); got != 17 {
		t.Fatalf("expected 17 available, got %d", got)
	}
}

func TestAddCargo(t *testing.T) {
	inv := newTestInventory()
	if !inv.AddCargo(ProductSpice, 20) {
		t.Fatalf("expected 20 units to fit")
	}
	if inv.Quantity(ProductSpice) != 20 || inv.AvailableSpace() != 0 {
		t.Fatalf("unexpected hold: %v, space %d", inv.Cargo, inv.AvailableSpace())
	}
}

func TestAddCargoOverCapacityLeavesInventoryUnchanged(t *testing.T) {
	inv := newTestInventory()
	inv.AddCargo(ProductBiomatter, 15)
	before := inv.Snapshot()

	if inv.AddCargo(ProductSpice, 6) {
		t.Fatalf("expected add of 6 to fail with %d available", before.AvailableSpace())
	}
	if !reflect.DeepEqual(inv, before) {
		t.Fatalf("inventory changed on failed add:\n got  %+v\n want %+v", inv, before)
	}
}

func TestRemoveCargo(t *testing.T) {
	inv := newTestInventory()
	inv.AddCargo(ProductMinerals, 4)

	if inv.RemoveCargo(ProductMinerals, 5) {
		t.Fatalf("removing more than held should fail")
	}
	if inv.Quantity(ProductMinerals) != 4 {
		t.Fatalf("failed remove changed quantity to %d", inv.Quantity(ProductMinerals))
	}
	if inv.RemoveCargo(ProductSpice, 1) {
		t.Fatalf("removing an absent kind should fail")
	}
	if !inv.RemoveCargo(ProductMinerals, 1) || inv.Quantity(ProductMinerals) != 3 {
		t.Fatalf("expected 3 minerals after removing 1, got %d", inv.Quantity(ProductMinerals))
	}
	if !inv.RemoveCargo(ProductMinerals, 3) {
		t.Fatalf("removing the remainder should succeed")
	}
	if _, ok := inv.Cargo[ProductMinerals]; ok {
		t.Fatalf("kind at zero should leave the map, got %v", inv.Cargo)
	}
}

func TestSellAllCargoSkipsPlanetProduct(t *testing.T) {
	inv := newTestInventory()
	inv.Fuel = 10
	inv.Cargo[ProductSpice] = 5
	inv.Cargo[ProductMinerals] = 2
	inv.Cargo[ProductBiomatter] = 4

	earned := inv.SellAllCargo(ProductSpice)
	if want := 6 * SellProductPrice; earned != want {
		t.Fatalf("expected %d earned, got %d", want, earned)
	}
	if inv.Money != 100+earned {
		t.Fatalf("expected money %d, got %d", 100+earned, inv.Money)
	}
	if !reflect.DeepEqual(inv.Cargo, map[ProductKind]int{ProductSpice: 5}) {
		t.Fatalf("expected only spice left, got %v", inv.Cargo)
	}
}

func TestSellAllCargoNothingToSell(t *testing.T) {
	inv := newTestInventory()
	inv.Cargo[ProductBiomatter] = 3
	if earned := inv.SellAllCargo(ProductBiomatter); earned != 0 {
		t.Fatalf("expected nothing sold, got %d", earned)
	}
	if inv.Money != 100 || inv.Quantity(ProductBiomatter) != 3 {
		t.Fatalf("unexpected inventory after empty sale: %+v", inv)
	}
}

func TestOccupiedNeverExceedsCapacity(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	inv := newTestInventory()
	products := AllProducts()

	for i := 0; i < 2000; i++ {
		kind := products[rng.IntN(len(products))]
		amount := rng.IntN(50) - 25
		if rng.IntN(2) == 0 {
			inv.AddCargo(kind, amount)
		} else {
			inv.RemoveCargo(kind, amount)
		}
		if got := inv.TotalOccupied(); got > CargoCapacity {
			t.Fatalf("step %d: occupied %d exceeds capacity", i, got)
		}
		for _, k := range inv.Kinds() {
			if inv.Quantity(k) <= 0 {
				t.Fatalf("step %d: %s held at %d", i, k, inv.Quantity(k))
			}
		}
	}
}

func TestNonPositiveAmountsRejected(t *testing.T) {
	inv := newTestInventory()
	inv.AddCargo(ProductSpice, 1)
	before := inv.Snapshot()

	tests := []struct {
		name string
		op   func() bool
	}{
		{"remove negative", func() bool { return inv.RemoveCargo(ProductSpice, -50) }},
		{"remove zero", func() bool { return inv.RemoveCargo(ProductSpice, 0) }},
		{"add negative", func() bool { return inv.AddCargo(ProductMinerals, -3) }},
		{"add zero", func() bool { return inv.AddCargo(ProductMinerals, 0) }},
	}
	for _, tt := range tests {
		if tt.op() {
			t.Errorf("%s: expected failure", tt.name)
		}
		if !reflect.DeepEqual(inv, before) {
			t.Fatalf("%s: inventory changed:\n got  %+v\n want %+v", tt.name, inv, before)
		}
	}
	if got := inv.TotalOccupied(); got != 81 {
		t.Fatalf("expected 81 occupied, got %d", got)
	}
}

func TestKindsSorted(t *testing.T) {
	inv := newTestInventory()
	inv.Cargo[ProductBiomatter] = 1
	inv.Cargo[ProductSpice] = 1
	got := inv.Kinds()
	want := []ProductKind{ProductSpice, ProductBiomatter}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	inv := newTestInventory()
	inv.AddCargo(ProductSpice, 2)
	snap := inv.Snapshot()
	inv.AddCargo(ProductSpice, 3)
	if snap.Quantity(ProductSpice) != 2 {
		t.Fatalf("snapshot shares cargo map with the ledger")
	}
	if snap.Capacity() != CargoCapacity {
		t.Fatalf("snapshot lost capacity: %d", snap.Capacity())
	}
}

func TestProductNames(t *testing.T) {
	tests := []struct {
		kind ProductKind
		want string
	}{
		{ProductSpice, "Spice"},
		{ProductMinerals, "Minerals"},
		{ProductBiomatter, "Biomatter"},
		{ProductKindCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.Name(); got != tt.want {
			t.Errorf("ProductKind(%d).Name() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
