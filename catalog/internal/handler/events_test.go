package handler_test

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/catalog-service/catalog/internal/handler"
	cb "github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
)

func TestEnqueuer(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.JSONEq(t, `{"timestamp":"2024-03-10T09:30:00Z","username":"librarian","event_type":"book.deleted","entity_id":"1"}`, string(val))
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	breaker := cb.NewCircuitBreaker(10, time.Minute, 0.5, 1)
	q := handler.NewEnqueuer(producer, breaker)

	require.NoError(t, q.Enqueue(kafka.CatalogTopic, kafka.EventCatalog{
		Timestamp: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC),
		UserName:  "librarian",
		EventType: kafka.EventBookDeleted,
		EntityID:  "1",
	}))
	require.ErrorIs(t, q.Enqueue(kafka.CatalogTopic, kafka.EventCatalog{EventType: kafka.EventBookDeleted}), sarama.ErrOutOfBrokers)
	require.Equal(t, cb.Closed, breaker.State())
	require.NoError(t, producer.Close())
}
