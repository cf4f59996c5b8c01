package service

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"golang.org/x/sync/errgroup"
	"shipping-quote-service/carrier"
	"shipping-quote-service/conf"
	"shipping-quote-service/domain"
)

const defaultDeliveryDays = 10

var displayNameByCode = map[string]string{
	"04510": "PAC",
	"03298": "PAC",
	"04014": "SEDEX",
	"03220": "SEDEX",
}

type TokenRepo interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

type CarrierRepo interface {
	Prices(
		ctx context.Context,
		token string,
		originCep string,
		destinationCep string,
		weightGrams int,
		serviceCodes []string,
	) ([]carrier.PriceResult, error)
	Deadlines(
		ctx context.Context,
		token string,
		originCep string,
		destinationCep string,
		serviceCodes []string,
	) ([]carrier.DeadlineResult, error)
}

type Quote struct {
	tokens       TokenRepo
	carrier      CarrierRepo
	originCep    string
	serviceCodes []string
	logger       log.Logger
}

func NewQuote(tokens TokenRepo, carrierRepo CarrierRepo, config conf.Quote, logger log.Logger) Quote {
	return Quote{
		tokens:       tokens,
		carrier:      carrierRepo,
		originCep:    config.OriginCep,
		serviceCodes: config.ServiceCodes,
		logger:       logger,
	}
}

// Quote fetches price and deadline quotes concurrently and merges them into
// options sorted by price ascending. Any carrier failure fails the whole
// attempt; the caller degrades to the regional fallback table.
func (s Quote) Quote(ctx context.Context, destinationCep string, weightGrams int) ([]domain.ShippingOption, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "get carrier token")
	}

	var (
		prices    []carrier.PriceResult
		deadlines []carrier.DeadlineResult
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		prices, err = s.carrier.Prices(groupCtx, token, s.originCep, destinationCep, weightGrams, s.serviceCodes)
		return errors.WithMessage(err, "fetch prices")
	})
	group.Go(func() error {
		var err error
		deadlines, err = s.carrier.Deadlines(groupCtx, token, s.originCep, destinationCep, s.serviceCodes)
		return errors.WithMessage(err, "fetch deadlines")
	})
	err = group.Wait()
	if err != nil {
		if carrier.IsUnauthorized(err) {
			// the cached token was revoked on the carrier side,
			// the next quote re-authenticates
			s.tokens.Invalidate()
		}
		return nil, err
	}

	deadlineByCode := make(map[string]carrier.DeadlineResult, len(deadlines))
	for _, deadline := range deadlines {
		deadlineByCode[deadline.CoProduto] = deadline
	}

	options := make([]domain.ShippingOption, 0, len(prices))
	for _, price := range prices {
		if price.TxErro != "" {
			// carrier declined this service code, drop it from the quote
			s.logger.Debug(ctx, "carrier declined service",
				log.String("serviceCode", price.CoProduto),
				log.String("carrierError", price.TxErro),
			)
			continue
		}

		amount, err := carrier.ParsePrice(price.PcFinal)
		if err != nil {
			s.logger.Debug(ctx, "unparseable carrier price",
				log.String("serviceCode", price.CoProduto),
				log.String("rawPrice", price.PcFinal),
			)
			continue
		}

		days := defaultDeliveryDays
		deadline, ok := deadlineByCode[price.CoProduto]
		if ok && deadline.TxErro == "" && deadline.PrazoEntrega > 0 {
			days = deadline.PrazoEntrega
		}

		options = append(options, domain.ShippingOption{
			ServiceCode:        price.CoProduto,
			DisplayName:        displayName(price.CoProduto),
			Price:              roundPrice(amount),
			DeliveryDays:       days,
			DeliveryRangeLabel: deliveryRangeLabel(days),
		})
	}

	if len(options) == 0 {
		return nil, errors.New("carrier returned no valid price entries")
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	return options, nil
}

func displayName(serviceCode string) string {
	name, ok := displayNameByCode[serviceCode]
	if ok {
		return name
	}
	return serviceCode
}
