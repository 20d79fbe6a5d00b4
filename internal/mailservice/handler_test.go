package mailservice

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifyUserCreated(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMailer := new(MockMailer)
	mockLogger := new(MockLogger)

	expectedArgs := []interface{}{slog.Attr{Key: "username", Value: slog.StringValue("mluukkai")}}
	mockLogger.On("Info", "registration notice sent", expectedArgs).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:     mockMC,
		m:      mockMailer,
		admin:  "admin@example.com",
		logger: mockLogger,
		ctx:    ctx,
		cancel: cancel,
	}

	go s.NotifyUserCreated()

	time.Sleep(1 * time.Second)

	if mockMailer.IsCalled() {
		assert.Equal(t, "admin@example.com", mockMailer.GetEmail(), "expected the notice to go to the admin mailbox")
	}

	mockMC.AssertExpectations(t)
	mockLogger.AssertExpectations(t)

	t.Cleanup(func() {
		s.Close()
	})
}
