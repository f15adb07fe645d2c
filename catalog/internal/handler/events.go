package handler

import (
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/pkg/auth"
	cb "github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer publishes through producer; once the breaker opens, events are
// dropped until it lets a probe through again.
func NewEnqueuer(producer sarama.SyncProducer, breaker cb.CircuitBreaker) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       breaker,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       cb.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(string, any) error { return nil }

// publish emits a catalog event after a successful write; failures only get logged.
func (h *Handler) publish(c echo.Context, typ kafka.EventType, entityID string, payload any) {
	userName, _ := auth.GetUserName(c.Request().Context())
	ev := kafka.EventCatalog{
		Timestamp: h.now().UTC(),
		UserName:  userName,
		EventType: typ,
		EntityID:  entityID,
		Payload:   payload,
	}
	if err := h.enqueuer.Enqueue(kafka.CatalogTopic, ev); err != nil {
		h.log.Warn("h.enqueuer.Enqueue()", zap.String("event", string(typ)), zap.Error(err))
	}
}
