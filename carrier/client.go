package carrier

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/http/httpcli"
	"shipping-quote-service/conf"
	"shipping-quote-service/domain"
)

const (
	authPath     = "/token/v1/autentica/cartaopostagem"
	pricePath    = "/preco/v1/nacional"
	deadlinePath = "/prazo/v1/nacional"

	defaultTimeout  = 15 * time.Second
	defaultTokenTtl = 30 * time.Minute
)

var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type Client struct {
	cli            *httpcli.Client
	baseUrl        string
	username       string
	password       string
	postcardNumber string
	timeout        time.Duration
}

func NewClient(cli *httpcli.Client, config conf.Carrier) *Client {
	timeout := defaultTimeout
	if config.TimeoutInSec > 0 {
		timeout = time.Duration(config.TimeoutInSec) * time.Second
	}
	return &Client{
		cli:            cli,
		baseUrl:        config.BaseUrl,
		username:       config.Username,
		password:       config.Password,
		postcardNumber: config.PostcardNumber,
		timeout:        timeout,
	}
}

// Authenticate exchanges the account credentials for a bearer token.
// Single shot, no retries: the caller falls back to the regional table.
func (c *Client) Authenticate(ctx context.Context) (domain.CarrierToken, error) {
	if c.username == "" || c.password == "" || c.postcardNumber == "" {
		return domain.CarrierToken{}, errors.New("carrier credentials are not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	credentials := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
	response := authResponse{}
	_, err := c.cli.Post(c.baseUrl+authPath).
		Header("Authorization", "Basic "+credentials).
		JsonRequestBody(authRequest{Numero: c.postcardNumber}).
		JsonResponseBody(&response).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return domain.CarrierToken{}, errors.WithMessage(err, "carrier: authenticate")
	}
	if response.Token == "" {
		return domain.CarrierToken{}, errors.New("carrier: authenticate: empty token in response")
	}

	return domain.CarrierToken{
		Token:     response.Token,
		ExpiresAt: parseExpiry(response.ExpiraEm),
	}, nil
}

// Prices requests the final price for every service code in one batch.
// Per-code carrier errors come back inside the entries (TxErro), not here.
func (c *Client) Prices(
	ctx context.Context,
	token string,
	originCep string,
	destinationCep string,
	weightGrams int,
	serviceCodes []string,
) ([]PriceResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := priceRequest{IdLote: "1"}
	for i, code := range serviceCodes {
		body.ParametrosProduto = append(body.ParametrosProduto, priceParams{
			CoProduto:    code,
			NuRequisicao: strconv.Itoa(i + 1),
			CepOrigem:    originCep,
			CepDestino:   destinationCep,
			PsObjeto:     strconv.Itoa(weightGrams),
		})
	}

	results := []PriceResult{}
	_, err := c.cli.Post(c.baseUrl+pricePath).
		Header("Authorization", "Bearer "+token).
		JsonRequestBody(body).
		JsonResponseBody(&results).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "carrier: price quote")
	}

	return results, nil
}

// Deadlines requests delivery deadlines for every service code in one batch.
func (c *Client) Deadlines(
	ctx context.Context,
	token string,
	originCep string,
	destinationCep string,
	serviceCodes []string,
) ([]DeadlineResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := deadlineRequest{IdLote: "1"}
	for i, code := range serviceCodes {
		body.ParametrosPrazo = append(body.ParametrosPrazo, deadlineParams{
			CoProduto:    code,
			NuRequisicao: strconv.Itoa(i + 1),
			CepOrigem:    originCep,
			CepDestino:   destinationCep,
		})
	}

	results := []DeadlineResult{}
	_, err := c.cli.Post(c.baseUrl+deadlinePath).
		Header("Authorization", "Bearer "+token).
		JsonRequestBody(body).
		JsonResponseBody(&results).
		StatusCodeToError().
		Do(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "carrier: deadline quote")
	}

	return results, nil
}

// IsUnauthorized reports whether the carrier rejected the request because
// the token was expired or revoked on its side.
func IsUnauthorized(err error) bool {
	errResp := httpcli.ErrorResponse{}
	return errors.As(err, &errResp) && errResp.StatusCode == http.StatusUnauthorized
}

func parseExpiry(raw string) time.Time {
	for _, layout := range expiryLayouts {
		expiresAt, err := time.Parse(layout, raw)
		if err == nil {
			return expiresAt
		}
	}
	// carrier responded without a usable expiry, assume a short-lived token
	return time.Now().Add(defaultTokenTtl)
}

// ParsePrice converts the carrier's pt-BR decimal notation ("1.326,90")
// into a currency amount.
func ParsePrice(raw string) (float64, error) {
	normalized := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '.':
		case ',':
			normalized = append(normalized, '.')
		default:
			normalized = append(normalized, raw[i])
		}
	}
	price, err := strconv.ParseFloat(string(normalized), 64)
	if err != nil {
		return 0, errors.WithMessagef(err, "parse price %q", raw)
	}
	if price < 0 {
		return 0, errors.Errorf("negative price %q", raw)
	}
	return price, nil
}
