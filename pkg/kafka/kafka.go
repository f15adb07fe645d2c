package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const CatalogTopic = "catalog-events"

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventBookCreated   EventType = "book.created"
	EventBookUpdated   EventType = "book.updated"
	EventBookDeleted   EventType = "book.deleted"
	EventAuthorCreated EventType = "author.created"
	EventAuthorUpdated EventType = "author.updated"
	EventAuthorDeleted EventType = "author.deleted"
	EventLoanRenewed   EventType = "loan.renewed"
)

type EventCatalog struct {
	Timestamp time.Time `json:"timestamp"`
	UserName  string    `json:"username"`
	EventType EventType `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	Payload   any       `json:"payload,omitempty"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
