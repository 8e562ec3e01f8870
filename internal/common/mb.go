package common

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Exchange string

type Queue string

type BindingKey string

type MessageProducer interface {
	Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error
}

type MessageConsumer interface {
	Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error)
}

const (
	FrogExchange         Exchange   = "frogblogs_exchange"
	CommentAttachedQueue Queue      = "comment_attached_queue"
	CommentAttachedKey   BindingKey = "comment.attached"
)

// CommentAttachedEvent is published once a comment has been linked to a blog.
// Schema is "roster" for a membership and "ownership" for a comment's blog_id.
type CommentAttachedEvent struct {
	Schema       string `json:"schema"`
	BlogID       int    `json:"blog_id"`
	CommentID    int    `json:"comment_id"`
	MembershipID int    `json:"membership_id,omitempty"`
	Role         string `json:"role,omitempty"`
}

type MessageBroker struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewMessageBroker(URI string) (*MessageBroker, error) {
	conn, ch, err := connectAMQP(URI)
	if err != nil {
		return nil, err
	}

	return &MessageBroker{
		conn: conn,
		ch:   ch,
	}, nil
}

func connectAMQP(URI string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(URI)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	return conn, ch, nil
}

// Close closes the connection and channel of the message broker.
func (mb *MessageBroker) Close() error {
	err := mb.ch.Close()
	if err != nil {
		return err
	}

	err = mb.conn.Close()
	if err != nil {
		return err
	}

	return nil
}

func SetupCommentExchange(mb *MessageBroker) error {
	err := mb.ch.ExchangeDeclare(string(FrogExchange), "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = mb.ch.QueueDeclare(string(CommentAttachedQueue), true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = mb.ch.QueueBind(string(CommentAttachedQueue), string(CommentAttachedKey), string(FrogExchange), false, nil)
	if err != nil {
		return err
	}

	return nil
}

func (mb *MessageBroker) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	err := mb.ch.PublishWithContext(ctx, string(exchange), string(key), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        msg,
	})
	if err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}

	return nil
}

// Consume makes sure queue exists and is bound to exchange under key, then starts delivering from it.
// Deliveries must be acknowledged by the caller.
func (mb *MessageBroker) Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error) {
	_, err := mb.ch.QueueDeclare(string(queue), true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not declare queue: %w", err)
	}

	err = mb.ch.QueueBind(string(queue), string(key), string(exchange), false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not bind queue: %w", err)
	}

	msgs, err := mb.ch.Consume(string(queue), "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not consume message: %w", err)
	}

	return msgs, nil
}

// PublishCommentAttached encodes evt and sends it on the comment exchange.
func PublishCommentAttached(ctx context.Context, p MessageProducer, evt CommentAttachedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("could not encode event: %w", err)
	}

	return p.Publish(ctx, body, CommentAttachedKey, FrogExchange)
}
