package mailservice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendEmail(t *testing.T) {
	mockParser := new(MockTemplate)
	mockDialer := new(MockDialer)

	mailer := Mail{
		dialer: mockDialer,
		parser: mockParser,
		sender: "sender@example.com",
	}

	subject := bytes.NewBufferString("Test Subject")
	plainBody := bytes.NewBufferString("Test Plain Body")
	htmlBody := bytes.NewBufferString("Test HTML Body")
	mockParser.On("ParseTemplate", "template.html", mock.Anything).Return(subject, plainBody, htmlBody, nil)

	mockDialer.On("DialAndSend", mock.AnythingOfType("[]*mail.Message")).Return(nil)

	err := mailer.send("admin@example.com", nil, "template.html")
	assert.NoError(t, err)

	mockParser.AssertExpectations(t)
	mockDialer.AssertExpectations(t)
}
