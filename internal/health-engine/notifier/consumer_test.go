package notifier

import (
	"SRM_Health_Automation/pkg/infra"
	"SRM_Health_Automation/pkg/mail"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const adminMail = "ops@example.com"

func newNotificationMessage(t *testing.T, channels []string) kafka.Message {
	event := notificationEvent{
		Notification: Notification{
			UserID:   "operators",
			Type:     "remediation_result",
			Title:    "Remediation failed",
			Message:  "auth-system remediation failed",
			Priority: PriorityCritical,
			Channels: channels,
		},
		SentAt: time.Now(),
	}
	value, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafka.Message{Value: value}
}

func TestConsumer_Start(t *testing.T) {
	emailMessage := newNotificationMessage(t, []string{ChannelEmail})
	pushOnlyMessage := newNotificationMessage(t, []string{ChannelPush})
	invalidJSONMessage := kafka.Message{Value: []byte("{not-a-json'")}
	nilValueMessage := kafka.Message{Value: nil}

	testCases := []struct {
		name       string
		setupMocks func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender)
	}{
		{
			name: "Success Email channel delivers to the admin address",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(emailMessage, nil),
					mockMail.EXPECT().SendMail([]string{adminMail}, "Remediation failed",
						"<h2>Remediation failed</h2><p>auth-system remediation failed</p>",
						"auth-system remediation failed", nil).Return(nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), emailMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Push only notification sends no mail",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(pushOnlyMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), pushOnlyMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Message value is nil",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(nilValueMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure FetchMessage returns a generic error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("kafka broker unavailable")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure JSON unmarshal fails and commit succeeds",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(invalidJSONMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), invalidJSONMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure SendMail error does not block the commit",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(emailMessage, nil),
					mockMail.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						Return(errors.New("smtp connection refused")),
					mockReader.EXPECT().CommitMessages(gomock.Any(), emailMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure CommitMessages fails after delivery",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockMail *mail.MockSender) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(emailMessage, nil),
					mockMail.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), emailMessage).Return(errors.New("failed to commit offset")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockReader := infra.NewMockKafkaReader(ctrl)
			mockMail := mail.NewMockSender(ctrl)
			logger := zap.NewNop()

			tc.setupMocks(mockReader, mockMail)

			c := NewConsumer(mockReader, mockMail, adminMail, logger)
			c.Start()

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestConsumer_SkipsMailWhenNoAdminConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockReader := infra.NewMockKafkaReader(ctrl)
	mockMail := mail.NewMockSender(ctrl)
	emailMessage := newNotificationMessage(t, []string{ChannelEmail})

	gomock.InOrder(
		mockReader.EXPECT().FetchMessage(gomock.Any()).Return(emailMessage, nil),
		mockReader.EXPECT().CommitMessages(gomock.Any(), emailMessage).Return(nil),
		mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
	)

	c := NewConsumer(mockReader, mockMail, "", zap.NewNop())
	c.Start()

	time.Sleep(50 * time.Millisecond)
}

func TestConsumer_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := infra.NewMockKafkaReader(ctrl)

	mockReader.EXPECT().Close().Times(1)

	c := NewConsumer(mockReader, nil, adminMail, zap.NewNop())
	c.Stop()
}
