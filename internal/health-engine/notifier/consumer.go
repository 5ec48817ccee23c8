package notifier

import (
	"SRM_Health_Automation/pkg/infra"
	"SRM_Health_Automation/pkg/mail"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Consumer drains the notification topic and delivers the email channel.
// The engine itself only publishes events, delivery happens here so a slow
// SMTP server never blocks a remediation attempt.
type Consumer interface {
	Start()
	Stop()
}

type consumer struct {
	kafkaReader infra.KafkaReader
	mailSender  mail.Sender
	adminMail   string
	logger      *zap.Logger
}

type notificationEvent struct {
	Notification
	SentAt time.Time `json:"sent_at"`
}

func (c *consumer) Start() {
	go func() {
		for {
			m, err := c.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if m.Value != nil {
				c.deliver(m.Value)
			}
			if err = c.kafkaReader.CommitMessages(ctx, m); err != nil {
				err = fmt.Errorf("Consumer.Start: %w", err)
				c.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
			cancel()
		}
	}()
}

func (c *consumer) deliver(value []byte) {
	var event notificationEvent
	if err := json.Unmarshal(value, &event); err != nil {
		err = fmt.Errorf("Consumer.deliver: %w", err)
		c.logger.Log(zap.ErrorLevel, "failed to unmarshal notification", zap.Error(err))
		return
	}
	wantsEmail := false
	for _, channel := range event.Channels {
		if channel == ChannelEmail {
			wantsEmail = true
			break
		}
	}
	if !wantsEmail || c.adminMail == "" {
		return
	}
	body := fmt.Sprintf("<h2>%s</h2><p>%s</p>", event.Title, event.Message)
	if err := c.mailSender.SendMail([]string{c.adminMail}, event.Title, body, event.Message, nil); err != nil {
		err = fmt.Errorf("Consumer.deliver: %w", err)
		c.logger.Log(zap.ErrorLevel, "failed to send notification mail", zap.Error(err),
			zap.String("title", event.Title))
	}
}

func (c *consumer) Stop() {
	c.kafkaReader.Close()
}

func NewConsumer(reader infra.KafkaReader, mailSender mail.Sender, adminMail string, logger *zap.Logger) Consumer {
	return &consumer{
		kafkaReader: reader,
		mailSender:  mailSender,
		adminMail:   adminMail,
		logger:      logger,
	}
}
