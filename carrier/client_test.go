package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"shipping-quote-service/carrier"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	price, err := carrier.ParsePrice("26,90")
	require.NoError(err)
	require.InDelta(26.90, price, 0.001)

	price, err = carrier.ParsePrice("1.326,90")
	require.NoError(err)
	require.InDelta(1326.90, price, 0.001)

	price, err = carrier.ParsePrice("0,00")
	require.NoError(err)
	require.InDelta(0, price, 0.001)
}

func TestParsePriceInvalid(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	for _, raw := range []string{"", "abc", "-5,00", "26,9,0"} {
		_, err := carrier.ParsePrice(raw)
		require.Error(err, "price: %q", raw)
	}
}
