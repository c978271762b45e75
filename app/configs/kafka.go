package configs

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter returns nil when no broker is configured; the notification
// service treats a nil writer as "events disabled".
func NewKafkaWriter(topic string) *kafka.Writer {
	brokers := LoadENV.KafkaBrokers
	if brokers == "" {
		return nil
	}
	if topic == "" {
		topic = "admin-events"
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
