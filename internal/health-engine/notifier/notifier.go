package notifier

import (
	"SRM_Health_Automation/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityCritical = "critical"
)

const (
	ChannelPush  = "push"
	ChannelEmail = "email"
)

type Notification struct {
	UserID   string                 `json:"user_id"`
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Message  string                 `json:"message"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Priority string                 `json:"priority"`
	Channels []string               `json:"channels"`
}

// Sender delivers notifications to operators. Delivery is fire and forget:
// failures are logged inside the sender and never propagated to the control
// loop.
type Sender interface {
	SendToUser(ctx context.Context, n Notification)
}

type sender struct {
	kafka  infra.KafkaWriter
	logger *zap.Logger
}

func (s *sender) SendToUser(ctx context.Context, n Notification) {
	if len(n.Channels) == 0 {
		n.Channels = []string{ChannelPush}
	}
	b, err := json.Marshal(struct {
		Notification
		SentAt time.Time `json:"sent_at"`
	}{Notification: n, SentAt: time.Now()})
	if err != nil {
		s.logger.Error("failed to marshal notification", zap.Error(fmt.Errorf("Sender.SendToUser: %w", err)))
		return
	}
	err = s.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.UserID),
		Value: b,
	})
	if err != nil {
		s.logger.Error("failed to publish notification event", zap.Error(fmt.Errorf("Sender.SendToUser: %w", err)),
			zap.String("title", n.Title))
	}
}

// NewSender returns a Sender that publishes notification events to kafka.
// The notification worker consumes the topic and handles the email channel.
func NewSender(kafkaWriter infra.KafkaWriter, logger *zap.Logger) Sender {
	return &sender{
		kafka:  kafkaWriter,
		logger: logger,
	}
}
