package audit

import (
	"encoding/json"
	"math"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"personnel-api/src/logger"
)

// Publisher mirrors audit entries to an external consumer. The nil-safe
// NopPublisher is used when no broker is configured.
type Publisher interface {
	Publish(entry Entry) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(Entry) error { return nil }

type RabbitPublisher struct {
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

// ConnectRabbit dials the broker with exponential backoff. The broker may
// come up after us in a compose environment.
func ConnectRabbit(url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	maxRetries := 7
	waitTime := 1 * time.Second

	queueLogger := logger.Default()

	for i := 0; i < maxRetries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		queueLogger.Warnf("Attempt %d failed: %v. Retrying in %v...", i+1, err, waitTime)
		time.Sleep(waitTime)
		waitTime = time.Duration(math.Pow(2, float64(i+1))) * time.Second
	}
	return nil, err
}

func NewRabbitPublisher(conn *amqp.Connection, exchange, routingKey string) (*RabbitPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{
		channel:    channel,
		exchange:   exchange,
		routingKey: routingKey,
	}, nil
}

func (p *RabbitPublisher) Publish(entry Entry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		p.exchange,
		p.routingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
			DeliveryMode: amqp.Persistent,
		},
	)
}
