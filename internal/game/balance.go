package game

import "math"

// Balance holds the gameplay tuning values. The zero value is not usable;
// start from DefaultBalance.
type Balance struct {
	BuyProductPrice  int     `yaml:"buy_product_price"`
	SellProductPrice int     `yaml:"sell_product_price"`
	FuelPrice        int     `yaml:"fuel_price"`
	FoodPrice        int     `yaml:"food_price"`
	FuelBuyAmount    float64 `yaml:"fuel_buy_amount"`
	FoodBuyAmount    int     `yaml:"food_buy_amount"`
	CargoCapacity    int     `yaml:"cargo_capacity"`

	StartingFuel  float64 `yaml:"starting_fuel"`
	StartingFood  int     `yaml:"starting_food"`
	StartingMoney int     `yaml:"starting_money"`

	FuelPerSecond   float64 `yaml:"fuel_per_second"`
	FoodInterval    float64 `yaml:"food_interval"`
	FoodPerInterval int     `yaml:"food_per_interval"`

	ShipSpeed        float64 `yaml:"ship_speed"`
	ShipSize         float64 `yaml:"ship_size"`
	LandingProximity float64 `yaml:"landing_proximity"`
	AnimationRate    float64 `yaml:"animation_rate"` // progress per second; 2 = half a second
}

// Ship and landing constants.
const (
	ShipSpeed            = 100.0
	ShipBaseSize         = 15.0
	LandingProximity     = 20.0
	LandingAnimationRate = 2.0
	LandedSizeFraction   = 0.3
)

// DefaultBalance returns the stock tuning.
func DefaultBalance() Balance {
	return Balance{
		BuyProductPrice:  BuyProductPrice,
		SellProductPrice: SellProductPrice,
		FuelPrice:        FuelPrice,
		FoodPrice:        FoodPrice,
		FuelBuyAmount:    FuelBuyAmount,
		FoodBuyAmount:    FoodBuyAmount,
		CargoCapacity:    CargoCapacity,
		StartingFuel:     StartingFuel,
		StartingFood:     StartingFood,
		StartingMoney:    StartingMoney,
		FuelPerSecond:    FuelConsumptionPerSec,
		FoodInterval:     FoodConsumptionInterval,
		FoodPerInterval:  FoodConsumedPerInterval,
		ShipSpeed:        ShipSpeed,
		ShipSize:         ShipBaseSize,
		LandingProximity: LandingProximity,
		AnimationRate:    LandingAnimationRate,
	}
}

// FuelBatchCost returns the price of one fuel purchase.
func (b Balance) FuelBatchCost() int {
	return int(math.Ceil(float64(b.FuelPrice) * b.FuelBuyAmount))
}

// FoodBatchCost returns the price of one food purchase.
func (b Balance) FoodBatchCost() int { return b.FoodPrice * b.FoodBuyAmount }
