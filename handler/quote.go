package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"github.com/txix-open/isp-kit/log"
	"shipping-quote-service/domain"
	"shipping-quote-service/httperrors"
	"shipping-quote-service/request"
)

type Quoter interface {
	Quote(ctx context.Context, destinationCep string, weightGrams int) ([]domain.ShippingOption, error)
}

type Fallback interface {
	Options(cep string, weightGrams int) []domain.ShippingOption
}

type Quote struct {
	quoter   Quoter
	fallback Fallback
	logger   log.Logger
}

func NewQuote(quoter Quoter, fallback Fallback, logger log.Logger) Quote {
	return Quote{
		quoter:   quoter,
		fallback: fallback,
		logger:   logger,
	}
}

// Handle serves POST /calculate-shipping. Carrier failures never surface to
// the client: the regional fallback table keeps checkout alive.
func (h Quote) Handle(ctx *request.Context) error {
	body := domain.QuoteRequest{}
	err := json.NewDecoder(ctx.Request().Body).Decode(&body)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.WithMessage(err, "decode request body"),
		)
	}

	cep, err := domain.NormalizeCep(body.CepDestino)
	if err != nil {
		return httperrors.New(
			http.StatusBadRequest,
			"invalid CEP, expected 8 digits",
			errors.WithMessagef(err, "normalize cep %q", body.CepDestino),
		)
	}

	weightGrams := clampWeight(body.Peso)

	options, err := h.quoter.Quote(ctx.Context(), cep, weightGrams)
	if err != nil {
		h.logger.Info(ctx.Context(), "carrier quote failed, using regional fallback table",
			log.String("cepDestino", cep),
			log.Int("weightGrams", weightGrams),
			log.String("error", err.Error()),
		)
		options = h.fallback.Options(cep, weightGrams)
	}

	writer := ctx.ResponseWriter()
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	return json.NewEncoder(writer).Encode(domain.QuoteResponse{
		Success: true,
		Options: options,
	})
}

// clampWeight bounds the weight before the float64 to int conversion:
// converting values outside the int range is undefined.
func clampWeight(peso float64) int {
	if peso > domain.MaxWeightGrams {
		return domain.MaxWeightGrams
	}
	weightGrams := int(peso)
	if weightGrams <= 0 {
		return domain.DefaultWeightGrams
	}
	return weightGrams
}
