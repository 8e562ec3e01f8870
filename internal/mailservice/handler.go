package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sushihentaime/frogblogs/internal/common"
	"golang.org/x/exp/rand"
)

const commentAttachedTemplate = "comment_attached.html"

var defaultRetry = retryPolicy{maxRetries: 5, baseDelay: 500 * time.Millisecond}

// NewMailService returns a service that mails recipient whenever a comment is attached to a blog.
func NewMailService(mb common.MessageConsumer, host, username, password, sender, recipient string, port int, logger MailLogger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:        mb,
		m:         NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:    logger,
		recipient: recipient,
		retry:     defaultRetry,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SendCommentNotifications starts consuming comment.attached events in the background.
func (s *MailService) SendCommentNotifications() {
	msgs, err := s.mb.Consume(common.CommentAttachedKey, common.FrogExchange, common.CommentAttachedQueue)
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

				s.notify(msg)

			case <-s.ctx.Done():
				s.logger.Info("stopping SendCommentNotifications due to context cancellation")
				return
			}
		}
	}()
}

func (s *MailService) notify(msg amqp.Delivery) {
	var evt common.CommentAttachedEvent

	err := json.Unmarshal(msg.Body, &evt)
	if err != nil {
		s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
		msg.Ack(false)
		return
	}

	// using exponential backoff with jitter
	var attempt int
	for attempt = 0; attempt < s.retry.maxRetries; attempt++ {
		err = s.m.send(s.recipient, evt, commentAttachedTemplate)
		if err == nil {
			s.logger.Info("comment notification sent", slog.Int("blog_id", evt.BlogID), slog.Int("comment_id", evt.CommentID))
			msg.Ack(false)
			return
		}

		delay := time.Duration(rand.Int63n(int64(s.retry.baseDelay) << uint(attempt)))
		s.logger.Info("delaying comment notification", slog.Int("attempt", attempt), slog.Duration("delay", delay), slog.String("error", err.Error()))

		select {
		case <-time.After(delay):
		case <-s.ctx.Done():
			return
		}
	}

	s.logger.Error("could not send comment notification", slog.Int("blog_id", evt.BlogID), slog.Int("comment_id", evt.CommentID))
	msg.Ack(false)
}

func (s *MailService) Close() {
	s.cancel()
}
