package game

import (
	"reflect"
	"testing"
)

func TestBuyProductFromStart(t *testing.T) {
	inv := newTestInventory()
	rc := BuyProduct(&inv, DefaultBalance(), ProductSpice)
	if rc.Result != TradeOK {
		t.Fatalf("expected purchase to succeed, got %v", rc.Result)
	}
	if inv.Money != 80 {
		t.Fatalf("expected money 80, got %d", inv.Money)
	}
	if !reflect.DeepEqual(inv.Cargo, map[ProductKind]int{ProductSpice: 1}) {
		t.Fatalf("expected one spice, got %v", inv.Cargo)
	}
}

func TestBuyRefusals(t *testing.T) {
	b := DefaultBalance()

	tests := []struct {
		name  string
		setup func(inv *Inventory)
		buy   func(inv *Inventory) Receipt
		want  TradeResult
	}{
		{
			name:  "product without money",
			setup: func(inv *Inventory) { inv.Money = BuyProductPrice - 1 },
			buy:   func(inv *Inventory) Receipt { return BuyProduct(inv, b, ProductMinerals) },
			want:  TradeNoMoney,
		},
		{
			name:  "product without space",
			setup: func(inv *Inventory) { inv.AddCargo(ProductSpice, inv.AvailableSpace()) },
			buy:   func(inv *Inventory) Receipt { return BuyProduct(inv, b, ProductMinerals) },
			want:  TradeNoSpace,
		},
		{
			name:  "fuel without money",
			setup: func(inv *Inventory) { inv.Money = b.FuelBatchCost() - 1 },
			buy:   func(inv *Inventory) Receipt { return BuyFuel(inv, b) },
			want:  TradeNoMoney,
		},
		{
			name:  "fuel without space",
			setup: func(inv *Inventory) { inv.AddCargo(ProductSpice, inv.AvailableSpace()-9) },
			buy:   func(inv *Inventory) Receipt { return BuyFuel(inv, b) },
			want:  TradeNoSpace,
		},
		{
			name:  "food without money",
			setup: func(inv *Inventory) { inv.Money = 0 },
			buy:   func(inv *Inventory) Receipt { return BuyFood(inv, b) },
			want:  TradeNoMoney,
		},
		{
			name:  "food without space",
			setup: func(inv *Inventory) { inv.AddCargo(ProductSpice, inv.AvailableSpace()) },
			buy:   func(inv *Inventory) Receipt { return BuyFood(inv, b) },
			want:  TradeNoSpace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := newTestInventory()
			tt.setup(&inv)
			before := inv.Snapshot()

			rc := tt.buy(&inv)
			if rc.Result != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, rc.Result)
			}
			if !reflect.DeepEqual(inv, before) {
				t.Fatalf("refused purchase changed inventory:\n got  %+v\n want %+v", inv, before)
			}
		})
	}
}

func TestBuyFuel(t *testing.T) {
	inv := newTestInventory()
	inv.Fuel = 40.5
	rc := BuyFuel(&inv, DefaultBalance())
	if rc.Result != TradeOK {
		t.Fatalf("expected fuel purchase to succeed, got %v", rc.Result)
	}
	if inv.Fuel != 50.5 {
		t.Fatalf("expected fuel 50.5, got %g", inv.Fuel)
	}
	if inv.Money != 100-FuelPrice*10 {
		t.Fatalf("expected money %d, got %d", 100-FuelPrice*10, inv.Money)
	}
}

func TestBuyFuelNeedsOnlyPurchasedSpace(t *testing.T) {
	inv := newTestInventory()
	inv.Money = 1000
	inv.AddCargo(ProductSpice, inv.AvailableSpace()-10)
	if inv.AvailableSpace() != 10 {
		t.Fatalf("setup: expected 10 available, got %d", inv.AvailableSpace())
	}
	if rc := BuyFuel(&inv, DefaultBalance()); rc.Result != TradeOK {
		t.Fatalf("expected fuel to fit in exactly 10 units, got %v", rc.Result)
	}
	if inv.AvailableSpace() != 0 {
		t.Fatalf("expected a full hold, got %d available", inv.AvailableSpace())
	}
}

func TestBuyFood(t *testing.T) {
	inv := newTestInventory()
	rc := BuyFood(&inv, DefaultBalance())
	if rc.Result != TradeOK || inv.Food != 31 || inv.Money != 100-FoodPrice {
		t.Fatalf("unexpected result %v: food=%d money=%d", rc.Result, inv.Food, inv.Money)
	}
}

func TestReceiptString(t *testing.T) {
	ok := Receipt{Result: TradeOK, Item: "fuel", Amount: 10, Cost: 50}
	if got, want := ok.String(), "Bought 10 fuel for 50 credits."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	refused := Receipt{Result: TradeNoSpace, Item: "Spice"}
	if got, want := refused.String(), "Cannot buy Spice: not enough cargo space."; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
