package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/config"
	"github.com/txix-open/isp-kit/log"
)

const (
	defaultBindAddress        = "0.0.0.0:8080"
	defaultCarrierBaseUrl     = "https://api.correios.com.br"
	defaultCarrierTimeoutSec  = 15
	defaultOriginCep          = "01310100"
	defaultServiceCodes       = "04510,04014"
	defaultRequestsPerWindow  = 30
	defaultWindowSec          = 60
	defaultMaxRequestBodyInMb = 1
)

// FromEnv assembles the service configuration from the environment.
// Carrier credentials have no defaults: their absence is detected on the
// first authentication attempt, not here, so the service still starts and
// serves fallback quotes.
func FromEnv() (Remote, error) {
	cfg, err := config.New()
	if err != nil {
		return Remote{}, errors.WithMessage(err, "create config")
	}
	return FromConfig(cfg)
}

func FromConfig(cfg *config.Config) (Remote, error) {
	remote := Remote{
		Carrier: Carrier{
			BaseUrl:        cfg.Optional().String("CARRIER_BASE_URL", defaultCarrierBaseUrl),
			Username:       cfg.Optional().String("CARRIER_USERNAME", ""),
			Password:       cfg.Optional().String("CARRIER_PASSWORD", ""),
			PostcardNumber: cfg.Optional().String("CARRIER_POSTCARD_NUMBER", ""),
			TimeoutInSec:   cfg.Optional().Int("CARRIER_TIMEOUT_IN_SEC", defaultCarrierTimeoutSec),
		},
		Quote: Quote{
			OriginCep:    cfg.Optional().String("ORIGIN_CEP", defaultOriginCep),
			ServiceCodes: splitCodes(cfg.Optional().String("CARRIER_SERVICE_CODES", defaultServiceCodes)),
		},
		RateLimit: RateLimit{
			RequestsPerWindow: cfg.Optional().Int("RATE_LIMIT_REQUESTS_PER_WINDOW", defaultRequestsPerWindow),
			WindowInSec:       cfg.Optional().Int("RATE_LIMIT_WINDOW_IN_SEC", defaultWindowSec),
			UseSharedStore:    cfg.Optional().Bool("RATE_LIMIT_SHARED_STORE", false),
		},
		Http: Http{
			BindAddress:            cfg.Optional().String("BIND_ADDRESS", defaultBindAddress),
			MaxRequestBodySizeInMb: int64(cfg.Optional().Int("MAX_REQUEST_BODY_SIZE_IN_MB", defaultMaxRequestBodyInMb)),
		},
		Logging: Logging{
			LogLevel:         log.InfoLevel,
			RequestLogEnable: cfg.Optional().Bool("REQUEST_LOG_ENABLE", false),
			BodyLogEnable:    cfg.Optional().Bool("BODY_LOG_ENABLE", false),
		},
	}

	level := cfg.Optional().String("LOG_LEVEL", "")
	if level != "" {
		err := remote.Logging.LogLevel.UnmarshalText([]byte(level))
		if err != nil {
			return Remote{}, errors.WithMessage(err, "parse LOG_LEVEL")
		}
	}

	redisAddress := cfg.Optional().String("REDIS_ADDRESS", "")
	if redisAddress != "" {
		remote.Redis = &Redis{
			Address:  redisAddress,
			Username: cfg.Optional().String("REDIS_USERNAME", ""),
			Password: cfg.Optional().String("REDIS_PASSWORD", ""),
		}
	}

	err := remote.Validate()
	if err != nil {
		return Remote{}, errors.WithMessage(err, "invalid config")
	}

	return remote, nil
}

func splitCodes(raw string) []string {
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(part)
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
