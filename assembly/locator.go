package assembly

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http/httpcli"
	"github.com/txix-open/isp-kit/log"
	"shipping-quote-service/carrier"
	"shipping-quote-service/conf"
	"shipping-quote-service/handler"
	"shipping-quote-service/middleware"
	"shipping-quote-service/repository"
	"shipping-quote-service/routes"
	"shipping-quote-service/service"
)

const megabyte = int64(1 << 20)

type Locator struct {
	logger log.Logger
}

func NewLocator(logger log.Logger) Locator {
	return Locator{
		logger: logger,
	}
}

// Handler builds the complete HTTP surface from config. Tests call it
// directly and serve the result with httptest.
func (l Locator) Handler(config conf.Remote, redisCli redis.UniversalClient) http.Handler {
	carrierCli := carrier.NewClient(httpcli.New(), config.Carrier)
	tokenRepo := repository.NewToken(carrierCli)

	quoteService := service.NewQuote(tokenRepo, carrierCli, config.Quote, l.logger)
	fallbackService := service.NewFallback()

	windowLength := time.Duration(config.RateLimit.WindowInSec) * time.Second
	var rateLimitStore service.RateLimitStore
	if config.RateLimit.UseSharedStore {
		rateLimitStore = repository.NewRedisRateLimit(redisCli, windowLength)
	} else {
		rateLimitStore = repository.NewMemoryRateLimit(windowLength)
	}
	rateLimitService := service.NewRateLimit(rateLimitStore, config.RateLimit)

	quoteHandler := handler.NewQuote(quoteService, fallbackService, l.logger)
	chain := middleware.Chain(
		quoteHandler,
		middleware.RequestId(),
		middleware.Logger(l.logger, config.Logging.RequestLogEnable, config.Logging.BodyLogEnable),
		middleware.ErrorHandler(l.logger),
		middleware.Cors(),
		middleware.RateLimit(rateLimitService),
	)

	maxRequestBodySize := config.Http.MaxRequestBodySizeInMb * megabyte
	if maxRequestBodySize <= 0 {
		maxRequestBodySize = megabyte
	}
	api := middleware.Entrypoint(maxRequestBodySize, chain, l.logger)

	return routes.NewRoutes(api).Handler()
}
