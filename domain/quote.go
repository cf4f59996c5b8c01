package domain

const (
	// DefaultWeightGrams is assumed when the request omits the weight
	// or sends a non-positive value.
	DefaultWeightGrams = 300
	// MaxWeightGrams caps the billable weight. The carrier rejects
	// heavier parcels, so quoting beyond it is meaningless.
	MaxWeightGrams = 30000
)

type QuoteRequest struct {
	CepDestino string  `json:"cep_destino"`
	Peso       float64 `json:"peso"`
}

type ShippingOption struct {
	ServiceCode        string  `json:"serviceCode"`
	DisplayName        string  `json:"displayName"`
	Price              float64 `json:"price"`
	DeliveryDays       int     `json:"deliveryDays"`
	DeliveryRangeLabel string  `json:"deliveryRangeLabel"`
}

type QuoteResponse struct {
	Success bool             `json:"success"`
	Options []ShippingOption `json:"options"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
