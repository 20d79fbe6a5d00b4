package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tempFile, err := os.CreateTemp("", "config-*.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	configData := []byte(`
PORT=8080
ENVIRONMENT=development
SECRET=verysecretkey
POSTGRES_HOST=localhost
POSTGRES_PORT=5432
POSTGRES_USER=testuser
POSTGRES_PASSWORD=testpassword
POSTGRES_DB=testdb
MAIL_HOST=smtp.example.com
MAIL_PORT=587
MAIL_USER=testuser@example.com
MAIL_PASSWORD=testpassword
MAIL_SENDER=sender@example.com
MAIL_ADMIN=admin@example.com
RABBITMQ_HOST=rabbitmq.example.com
RABBITMQ_PORT=5672
RABBITMQ_USER=testuser
RABBITMQ_PASSWORD=testpassword
LIMITER_RPS=2
LIMITER_BURST=4
LIMITER_ENABLED=true
`)
	if _, err := tempFile.Write(configData); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	config, err := loadConfig(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "verysecretkey", config.Secret)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "5432", config.DBPort)
	assert.Equal(t, "testuser", config.DBUser)
	assert.Equal(t, "testpassword", config.DBPassword)
	assert.Equal(t, "testdb", config.DBName)
	assert.Equal(t, "smtp.example.com", config.MailHost)
	assert.Equal(t, 587, config.MailPort)
	assert.Equal(t, "testuser@example.com", config.MailUser)
	assert.Equal(t, "testpassword", config.MailPassword)
	assert.Equal(t, "sender@example.com", config.MailSender)
	assert.Equal(t, "admin@example.com", config.MailAdmin)
	assert.Equal(t, "rabbitmq.example.com", config.MQHost)
	assert.Equal(t, "5672", config.MQPort)
	assert.Equal(t, "testuser", config.MQUser)
	assert.Equal(t, "testpassword", config.MQPassword)
	assert.Equal(t, float64(2), config.LimiterRPS)
	assert.Equal(t, 4, config.LimiterBurst)
	assert.True(t, config.LimiterEnabled)
}
