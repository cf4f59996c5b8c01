package service

import (
	"fmt"
	"math"

	"shipping-quote-service/domain"
)

type Region string

const (
	RegionSudeste     Region = "sudeste"
	RegionNordeste    Region = "nordeste"
	RegionNorte       Region = "norte"
	RegionCentroOeste Region = "centro-oeste"
	RegionSul         Region = "sul"

	fallbackPacCode   = "04510"
	fallbackSedexCode = "04014"

	surchargeBaselineGrams = 300
	surchargeStepGrams     = 500
	surchargePerStep       = 5.0
)

type regionalRate struct {
	pacPrice   float64
	pacDays    int
	sedexPrice float64
	sedexDays  int
}

// base PAC/SEDEX prices and delivery windows for a 300g parcel, per region
var ratesByRegion = map[Region]regionalRate{
	RegionSudeste:     {pacPrice: 22.50, pacDays: 5, sedexPrice: 34.90, sedexDays: 2},
	RegionSul:         {pacPrice: 24.90, pacDays: 6, sedexPrice: 39.90, sedexDays: 3},
	RegionCentroOeste: {pacPrice: 26.90, pacDays: 7, sedexPrice: 42.90, sedexDays: 3},
	RegionNordeste:    {pacPrice: 29.90, pacDays: 7, sedexPrice: 49.90, sedexDays: 3},
	RegionNorte:       {pacPrice: 34.90, pacDays: 10, sedexPrice: 59.90, sedexDays: 5},
}

// RegionForCep derives the shipping region from the CEP prefix. Pure:
// the same prefix always maps to the same region.
func RegionForCep(cep string) Region {
	if len(cep) == 0 {
		return RegionSudeste
	}
	switch cep[0] {
	case '0', '1', '2', '3':
		return RegionSudeste
	case '4', '5':
		return RegionNordeste
	case '6':
		// 60-65 is the northeastern coast, 66-69 is the north
		if len(cep) > 1 && cep[1] >= '6' {
			return RegionNorte
		}
		return RegionNordeste
	case '7':
		return RegionCentroOeste
	default:
		return RegionSul
	}
}

// Fallback provides regional table quotes when the carrier is unreachable.
// It never fails and always returns exactly two options, economy first.
type Fallback struct {
}

func NewFallback() Fallback {
	return Fallback{}
}

func (s Fallback) Options(cep string, weightGrams int) []domain.ShippingOption {
	rate := ratesByRegion[RegionForCep(cep)]
	surcharge := weightSurcharge(weightGrams)

	return []domain.ShippingOption{
		{
			ServiceCode:        fallbackPacCode,
			DisplayName:        "PAC",
			Price:              roundPrice(rate.pacPrice + surcharge),
			DeliveryDays:       rate.pacDays,
			DeliveryRangeLabel: deliveryRangeLabel(rate.pacDays),
		},
		{
			ServiceCode:        fallbackSedexCode,
			DisplayName:        "SEDEX",
			Price:              roundPrice(rate.sedexPrice + surcharge),
			DeliveryDays:       rate.sedexDays,
			DeliveryRangeLabel: deliveryRangeLabel(rate.sedexDays),
		},
	}
}

// weightSurcharge adds a flat fee for every started 500g above the 300g
// baseline.
func weightSurcharge(weightGrams int) float64 {
	if weightGrams > domain.MaxWeightGrams {
		weightGrams = domain.MaxWeightGrams
	}
	if weightGrams <= surchargeBaselineGrams {
		return 0
	}
	steps := (weightGrams - surchargeBaselineGrams + surchargeStepGrams - 1) / surchargeStepGrams
	return float64(steps) * surchargePerStep
}

func deliveryRangeLabel(days int) string {
	if days == 1 {
		return "Até 1 dia útil"
	}
	return fmt.Sprintf("Até %d dias úteis", days)
}

func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
