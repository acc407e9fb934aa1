package audit

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes events to a topic, keyed by phone so every event for
// one customer lands on the same partition.
type KafkaSink struct {
	w     messageWriter
	topic string
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return newKafkaSink(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}, topic)
}

func newKafkaSink(w messageWriter, topic string) *KafkaSink {
	return &KafkaSink{w: w, topic: topic}
}

func (s *KafkaSink) Log(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(struct {
		SessionID string `json:"session_id"`
		Action    string `json:"action"`
		Outcome   string `json:"outcome"`
		Phone     string `json:"phone"`
		Metadata  any    `json:"metadata,omitempty"`
	}{ev.SessionID, ev.Action, ev.Outcome, ev.Phone, ev.Metadata})
	if err != nil {
		return err
	}

	return s.w.WriteMessages(ctx, kafka.Message{
		Topic: s.topic,
		Key:   []byte(ev.Phone),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(ev.Action)},
		},
	})
}

func (s *KafkaSink) Close() error {
	return s.w.Close()
}

// SplitBrokers parses a comma separated broker list.
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// MultiSink fans an event out to every sink and reports the first error.
type MultiSink []Sink

func (m MultiSink) Log(ctx context.Context, ev Event) error {
	var first error
	for _, s := range m {
		if err := s.Log(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
