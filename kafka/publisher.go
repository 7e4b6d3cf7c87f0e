// Package kafka publishes catalog events to a broker. Publishing is entirely
// optional: the demo runs self-contained, and a nil *Publisher drops every
// event silently.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/adilet/stockeasy/pkg/logger"
)

// Publisher wraps a Kafka sync producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishProductSold publishes a product sold event with tracing
func (p *Publisher) PublishProductSold(ctx context.Context, event ProductSoldEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.product_sold",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicProductSold),
			attribute.String("event.type", EventTypeProductSold),
			attribute.String("product.id", event.ProductID),
			attribute.Int("product.quantity", event.Quantity),
		),
	)
	defer span.End()

	event.EventType = EventTypeProductSold
	return p.publish(ctx, span, TopicProductSold, event.ProductID, &event.EventID, &event.Timestamp, &event)
}

// PublishProductCreated publishes a product created event with tracing
func (p *Publisher) PublishProductCreated(ctx context.Context, event ProductCreatedEvent) error {
	if p == nil {
		return nil
	}

	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.product_created",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicProductCreated),
			attribute.String("event.type", EventTypeProductCreated),
			attribute.String("product.id", event.ProductID),
		),
	)
	defer span.End()

	event.EventType = EventTypeProductCreated
	return p.publish(ctx, span, TopicProductCreated, event.ProductID, &event.EventID, &event.Timestamp, &event)
}

func (p *Publisher) publish(ctx context.Context, span trace.Span, topic, key string, eventID *string, timestamp *time.Time, event interface{}) error {
	if *eventID == "" {
		*eventID = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	*timestamp = time.Now()

	span.SetAttributes(attribute.String("event.id", *eventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Propagate trace context through Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published")

	logger.Logger.Info().
		Str("event_id", *eventID).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
