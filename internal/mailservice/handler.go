package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sushihentaime/bloglist/internal/common"
	"golang.org/x/exp/rand"
)

func NewMailService(mb common.MessageConsumer, host, username, password, sender, admin string, port int, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:     mb,
		m:      NewMailer(host, port, username, password, sender, NewTemplate()),
		admin:  admin,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NotifyUserCreated consumes user.created events and mails a
// registration notice to the admin mailbox.
func (s *MailService) NotifyUserCreated() {
	msgs, err := s.mb.Consume(common.UserCreatedKey, common.UserExchange, common.UserCreatedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var data struct {
					Username string
					Name     string
				}

				err := json.Unmarshal(msg.Body, &data)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
					continue
				}

				// exponential backoff with jitter
				const maxRetries = 5
				const baseDelay = 500 * time.Millisecond

				var attempt int
				for attempt = 0; attempt < maxRetries; attempt++ {
					err = s.m.send(s.admin, data, "user_created_email.html")
					if err == nil {
						s.logger.Info("registration notice sent", slog.String("username", data.Username))
						msg.Ack(false)
						break
					}

					delay := time.Duration(rand.Int63n(int64(baseDelay) << uint(attempt)))
					s.logger.Info("delaying registration notice", slog.String("username", data.Username), slog.Int("attempt", attempt), slog.Duration("delay", delay))
					time.Sleep(delay)
				}

				if attempt == maxRetries {
					s.logger.Error("could not send registration notice", slog.String("username", data.Username))
					msg.Ack(false)
				}

			case <-s.ctx.Done():
				s.logger.Info("stopping NotifyUserCreated due to context cancellation")
				return
			}
		}
	}()
}

func (s *MailService) Close() {
	s.cancel()
}
