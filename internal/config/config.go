package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/New_York"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Agency struct {
		URL      string `env:"AGENCY_URL"`
		Username string `env:"AGENCY_USERNAME"`
		Password string `env:"AGENCY_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"case_console:case_console"`
		BasicClients       []ConfigBasicClient
	}

	Scheduling struct {
		// Minutes before slot start during which an Available slot stops
		// being offerable for a new availability assignment.
		AvailableLeadMinutes int `env:"SCHEDULING_AVAILABLE_LEAD_MINUTES" envDefault:"30"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpURI string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			OptionsQueueName     string `env:"RABBITMQ_OPTIONS_QUEUE" envDefault:"case-console.options"`
			OptionsQueueBind     string `env:"RABBITMQ_OPTIONS_QUEUE_BIND" envDefault:"agency.case-console-svc.options.*.#"`
			OptionsQueueExchange string `env:"RABBITMQ_OPTIONS_QUEUE_EXCHANGE" envDefault:"agency.events"`

			CaseHeaderQueueName     string `env:"RABBITMQ_CASE_HEADER_QUEUE" envDefault:"case-console.caseheader"`
			CaseHeaderQueueBind     string `env:"RABBITMQ_CASE_HEADER_QUEUE_BIND" envDefault:"agency.case-console-svc.caseheader.*.#"`
			CaseHeaderQueueExchange string `env:"RABBITMQ_CASE_HEADER_QUEUE_EXCHANGE" envDefault:"agency.events"`

			AllQueueName     string `env:"RABBITMQ_ALL_QUEUE" envDefault:"case-console._all_"`
			AllQueueBind     string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"agency.case-console-svc._all_.*.#"`
			AllQueueExchange string `env:"RABBITMQ_ALL_QUEUE_EXCHANGE" envDefault:"agency.events"`
		}
	}

	Cache struct {
		Enabled        bool `env:"CACHE_ENABLED"`
		OptionsSize    int  `env:"CACHE_OPTIONS_SIZE" envDefault:"100"`
		CaseHeaderSize int  `env:"CACHE_CASE_HEADER_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Environments compare lowercased
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Cache invalidation arrives over RabbitMQ; without the listener a warm
	// cache would serve stale catalogs indefinitely
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
