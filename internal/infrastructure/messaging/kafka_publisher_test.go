package messaging_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openisa/nps-stub/internal/domain/event"
	"github.com/openisa/nps-stub/internal/infrastructure/messaging"
	pkgkafka "github.com/openisa/nps-stub/pkg/kafka"
	"github.com/openisa/nps-stub/pkg/testutil"
)

func TestKafkaPublisher_PublishesAuditEvent(t *testing.T) {
	if os.Getenv("NPSSTUB_INTEGRATION") == "" {
		t.Skip("set NPSSTUB_INTEGRATION to run container-backed tests")
	}

	ctx := context.Background()
	kc := testutil.NewKafkaContainer(ctx, t)
	t.Cleanup(func() { kc.Cleanup(t) })

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: kc.Brokers})
	t.Cleanup(func() { producer.Close() })

	publisher := messaging.NewKafkaPublisher(producer, slog.New(slog.DiscardHandler))

	evt := event.NewReturnsSubmitted(testutil.RefNormal, testutil.TaxYear, testutil.Month)
	testutil.RequireNoError(t, publisher.Publish(ctx, evt))

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: kc.Brokers,
		Topic:   "npsstub.returns.submitted",
		GroupID: "npsstub-test",
	})
	t.Cleanup(func() { reader.Close() })

	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)
	assert.Equal(t, evt.EventID().String(), string(msg.Key))

	var got event.ReturnsSubmitted
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, testutil.RefNormal, got.ISAReference)
	assert.Equal(t, testutil.TaxYear, got.TaxYear)

	var eventType string
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			eventType = string(h.Value)
		}
	}
	assert.Equal(t, "returns.submitted", eventType)
}
