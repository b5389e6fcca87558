package game

import (
	"fmt"
	"math"
)

// TradeResult reports the outcome of a purchase. Failed purchases leave the
// inventory untouched.
type TradeResult uint8

const (
	TradeOK TradeResult = iota
	TradeNoMoney
	TradeNoSpace
)

func (r TradeResult) String() string {
	switch r {
	case TradeOK:
		return "ok"
	case TradeNoMoney:
		return "not enough money"
	case TradeNoSpace:
		return "not enough cargo space"
	default:
		return "unknown"
	}
}

// Receipt describes a completed or refused purchase for the comms log.
type Receipt struct {
	Result TradeResult
	Item   string
	Amount float64
	Cost   int
}

func (r Receipt) String() string {
	if r.Result != TradeOK {
		return fmt.Sprintf("Cannot buy %s: %s.", r.Item, r.Result)
	}
	return fmt.Sprintf("Bought %g %s for %d credits.", r.Amount, r.Item, r.Cost)
}

// BuyProduct purchases one unit of kind at the flat product price.
func BuyProduct(inv *Inventory, b Balance, kind ProductKind) Receipt {
	rc := Receipt{Item: kind.Name(), Amount: 1, Cost: b.BuyProductPrice}
	switch {
	case inv.Money < rc.Cost:
		rc.Result = TradeNoMoney
	case !inv.AddCargo(kind, 1):
		rc.Result = TradeNoSpace
	default:
		inv.Money -= rc.Cost
	}
	return rc
}

// BuyFuel purchases one fixed batch of fuel. The space check uses the
// ceiling of the purchased amount only, not of the resulting tank level.
func BuyFuel(inv *Inventory, b Balance) Receipt {
	rc := Receipt{
		Item:   "fuel",
		Amount: b.FuelBuyAmount,
		Cost:   b.FuelBatchCost(),
	}
	switch {
	case inv.Money < rc.Cost:
		rc.Result = TradeNoMoney
	case inv.AvailableSpace() < int(math.Ceil(b.FuelBuyAmount)):
		rc.Result = TradeNoSpace
	default:
		inv.Money -= rc.Cost
		inv.Fuel += b.FuelBuyAmount
	}
	return rc
}

// BuyFood purchases one fixed batch of food.
func BuyFood(inv *Inventory, b Balance) Receipt {
	rc := Receipt{
		Item:   "food",
		Amount: float64(b.FoodBuyAmount),
		Cost:   b.FoodBatchCost(),
	}
	switch {
	case inv.Money < rc.Cost:
		rc.Result = TradeNoMoney
	case inv.AvailableSpace() < b.FoodBuyAmount:
		rc.Result = TradeNoSpace
	default:
		inv.Money -= rc.Cost
		inv.Food += b.FoodBuyAmount
	}
	return rc
}
