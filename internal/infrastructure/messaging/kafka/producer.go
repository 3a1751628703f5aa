package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"retail_inventory/internal/config"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/infrastructure/encoding/avro"
	"retail_inventory/pkg/logger"
)

// OrderEventProducer đẩy order event (Avro binary) lên Kafka.
type OrderEventProducer struct {
	client  *kgo.Client
	encoder *avro.Encoder
	topic   string
	logger  logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	encoder, err := avro.NewOrderEventEncoder()
	if err != nil {
		return nil, err
	}

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.EventTopic),
		// Đợi tất cả ISR confirm
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.EventTopic))

	return &OrderEventProducer{
		client:  client,
		encoder: encoder,
		topic:   cfg.EventTopic,
		logger:  log,
	}, nil
}

func (p *OrderEventProducer) PublishOrderEvent(ctx context.Context, ev order.Event) error {
	payload, err := p.encoder.Encode(ev)
	if err != nil {
		return err
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(ev.EventID),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	// ProduceSync trả về slice lỗi, chỉ dùng 1 record nên lấy phần tử đầu
	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.logger.Error("publish order event failed",
			logger.String("topic", p.topic),
			logger.String("event_id", ev.EventID),
			logger.Error(err))
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("order event published",
		logger.String("topic", p.topic),
		logger.String("event_id", ev.EventID))
	return nil
}

func (p *OrderEventProducer) Close(ctx context.Context) error {
	p.logger.Info("closing kafka producer", logger.String("topic", p.topic))
	p.client.Close()
	return nil
}
