package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"shipping-quote-service/domain"
	"shipping-quote-service/service"
)

func TestFallbackAlwaysTwoOptionsEconomyFirst(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	fallback := service.NewFallback()
	for _, cep := range []string{"01310100", "40010000", "51110160", "66010000", "70040010", "90010000"} {
		options := fallback.Options(cep, 300)
		require.Len(options, 2, "cep: %s", cep)
		require.EqualValues("PAC", options[0].DisplayName)
		require.EqualValues("SEDEX", options[1].DisplayName)
		require.GreaterOrEqual(options[1].Price, options[0].Price)
		require.Greater(options[0].Price, 0.0)
		require.Greater(options[0].DeliveryDays, 0)
	}
}

func TestFallbackWeightSurchargeSteps(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	fallback := service.NewFallback()
	base := fallback.Options("51110160", 300)[0].Price

	// one started 500g step above the baseline
	price800 := fallback.Options("51110160", 800)[0].Price
	require.InDelta(base+5, price800, 0.001)

	// a fraction of a step still counts as a full step
	price801 := fallback.Options("51110160", 801)[0].Price
	require.InDelta(base+10, price801, 0.001)

	price1300 := fallback.Options("51110160", 1300)[0].Price
	require.InDelta(base+10, price1300, 0.001)

	// monotonic in weight
	require.LessOrEqual(base, price800)
	require.LessOrEqual(price800, price1300)
}

func TestFallbackWeightSurchargeCapped(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	fallback := service.NewFallback()
	capped := fallback.Options("51110160", domain.MaxWeightGrams)[0].Price

	// weights beyond the cap price the same as the cap, never negative
	huge := fallback.Options("51110160", math.MaxInt)[0].Price
	require.InDelta(capped, huge, 0.001)
	require.Greater(huge, 0.0)

	above := fallback.Options("51110160", domain.MaxWeightGrams+1)[0].Price
	require.InDelta(capped, above, 0.001)
}

func TestFallbackNortheastScenario(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	fallback := service.NewFallback()
	options := fallback.Options("51110160", 300)

	require.EqualValues(service.RegionNordeste, service.RegionForCep("51110160"))
	require.InDelta(29.90, options[0].Price, 0.001)
	require.EqualValues(7, options[0].DeliveryDays)
	require.EqualValues("Até 7 dias úteis", options[0].DeliveryRangeLabel)
	require.InDelta(49.90, options[1].Price, 0.001)
	require.EqualValues(3, options[1].DeliveryDays)
}

func TestRegionForCepIsPure(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cases := map[string]service.Region{
		"01310100": service.RegionSudeste,
		"20040020": service.RegionSudeste,
		"30130010": service.RegionSudeste,
		"40010000": service.RegionNordeste,
		"51110160": service.RegionNordeste,
		"60010000": service.RegionNordeste,
		"65010000": service.RegionNordeste,
		"66010000": service.RegionNorte,
		"69010000": service.RegionNorte,
		"70040010": service.RegionCentroOeste,
		"80010000": service.RegionSul,
		"90010000": service.RegionSul,
	}
	for cep, expected := range cases {
		for i := 0; i < 3; i++ {
			require.EqualValues(expected, service.RegionForCep(cep), "cep: %s", cep)
		}
	}
}
