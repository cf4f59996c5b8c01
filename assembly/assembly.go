package assembly

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/log"
	"shipping-quote-service/conf"
)

type Assembly struct {
	config   conf.Remote
	server   *http.Server
	logger   *log.Adapter
	redisCli redis.UniversalClient
}

func New(config conf.Remote, logger *log.Adapter) (*Assembly, error) {
	logger.SetLevel(config.Logging.LogLevel)

	var redisCli redis.UniversalClient
	if config.Redis != nil {
		redisCli = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Address,
			Username: config.Redis.Username,
			Password: config.Redis.Password,
		})
	}

	server := http.NewServer(logger)
	locator := NewLocator(logger)
	server.Upgrade(locator.Handler(config, redisCli))

	return &Assembly{
		config:   config,
		server:   server,
		logger:   logger,
		redisCli: redisCli,
	}, nil
}

func (a *Assembly) Run(ctx context.Context) error {
	a.logger.Info(ctx, "listening", log.String("address", a.config.Http.BindAddress))
	return a.server.ListenAndServe(a.config.Http.BindAddress)
}

func (a *Assembly) Close() error {
	err := a.server.Shutdown(context.Background())
	if a.redisCli != nil {
		_ = a.redisCli.Close()
	}
	return err
}
