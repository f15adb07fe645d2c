package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"github.com/Astemirdum/catalog-service/pkg/session"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Auth struct {
	JWTKey   string        `yaml:"jwtKey" envconfig:"JWT_KEY" json:"-"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"JWT_TTL" default:"24h"`
}

// Events tunes the breaker in front of the event producer.
type Events struct {
	RecordLength     int           `envconfig:"EVENTS_CB_RECORDS" default:"20"`
	Timeout          time.Duration `envconfig:"EVENTS_CB_TIMEOUT" default:"30s"`
	Percentile       float64       `envconfig:"EVENTS_CB_PERCENTILE" default:"0.5"`
	RecoveryRequests int           `envconfig:"EVENTS_CB_RECOVERY" default:"3"`
}

type Config struct {
	Server   HTTPServer     `yaml:"server"`
	Auth     Auth           `yaml:"auth"`
	Database postgres.DB    `yaml:"db"`
	Session  session.Config `yaml:"session"`
	Kafka    kafka.Config
	Events   Events
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
