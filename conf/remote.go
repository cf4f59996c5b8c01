package conf

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/rc/schema"
	"github.com/txix-open/jsonschema"
)

func init() {
	schema.CustomGenerators.Register("logLevel", func(field reflect.StructField, t *jsonschema.Schema) {
		t.Type = "string"
		t.Enum = []interface{}{"debug", "info", "error", "fatal"}
	})
}

type Remote struct {
	Carrier   Carrier   `schema:"Настройки API перевозчика"`
	Quote     Quote     `schema:"Настройки котировки доставки"`
	RateLimit RateLimit `schema:"Настройки ограничения частоты запросов"`
	Http      Http      `schema:"Настройки HTTP"`
	Logging   Logging   `schema:"Настройки логирования"`
	Redis     *Redis    `schema:"Настройки Redis,обязательно, если выбрано общее хранилище счётчиков"`
}

type Carrier struct {
	BaseUrl        string `valid:"required" schema:"Базовый URL API перевозчика"`
	Username       string `schema:"Имя пользователя"`
	Password       string `schema:"Пароль"`
	PostcardNumber string `schema:"Номер карты почтовых отправлений"`
	TimeoutInSec   int    `schema:"Таймаут запросов к перевозчику,в секундах, по умолчанию 15"`
}

type Quote struct {
	OriginCep    string   `valid:"required" schema:"CEP отправления"`
	ServiceCodes []string `valid:"required" schema:"Коды услуг перевозчика"`
}

type RateLimit struct {
	RequestsPerWindow int  `schema:"Запросов в окне,0 отключает ограничение"`
	WindowInSec       int  `schema:"Длина окна,в секундах"`
	UseSharedStore    bool `schema:"Общее хранилище счётчиков,требует Redis, используется при нескольких инстансах"`
}

type Http struct {
	BindAddress            string `valid:"required" schema:"Адрес для входящих запросов"`
	MaxRequestBodySizeInMb int64  `schema:"Максимальная длина тела запроса,в мегабайтах"`
}

type Logging struct {
	LogLevel         log.Level `schemaGen:"logLevel" schema:"Уровень логирования,логирование запросов осуществляется на уровне debug"`
	RequestLogEnable bool      `schema:"Включить логирование запросов"`
	BodyLogEnable    bool      `schema:"Включить логирование тел запросов и ответов,должно быть включено логирование запросов"`
}

type Redis struct {
	Address  string `valid:"required" schema:"Адрес"`
	Username string `schema:"Имя пользователя"`
	Password string `schema:"Пароль"`
}

func (r Remote) Validate() error {
	if r.RateLimit.UseSharedStore && r.Redis == nil {
		return errors.New("redis is required if shared rate limit store was selected")
	}
	if len(r.Quote.ServiceCodes) == 0 {
		return errors.New("at least one carrier service code is required")
	}
	for _, code := range r.Quote.ServiceCodes {
		if strings.TrimSpace(code) == "" {
			return errors.New("carrier service codes must not be empty")
		}
	}
	return nil
}
