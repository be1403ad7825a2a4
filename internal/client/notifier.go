package client

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/openpolls/backend/internal/dto"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Notifier broadcasts poll activity to interested consumers. Publishing is
// best effort: a lost message never fails the request that produced it.
type Notifier interface {
	PublishActivity(activity dto.Activity)
	Close() error
}

type amqpNotifier struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchangeName string
	mutex        sync.RWMutex
}

func NewAMQPNotifier(cfg dto.Config) (Notifier, error) {
	if cfg.AMQPURL == "" {
		return newNoopNotifier(), nil
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	exchangeName := "poll-activity"
	err = ch.ExchangeDeclare(
		exchangeName, // name
		"fanout",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	notifier := &amqpNotifier{
		conn:         conn,
		channel:      ch,
		exchangeName: exchangeName,
	}

	go notifier.monitorConnection(cfg.AMQPURL)

	return notifier, nil
}

func (n *amqpNotifier) monitorConnection(connectionStr string) {
	connCloseChan := make(chan *amqp.Error)
	n.conn.NotifyClose(connCloseChan)

	err := <-connCloseChan
	if err == nil {
		// Deliberate close, nothing to recover.
		return
	}
	logrus.Errorf("AMQP connection closed: %v", err)

	for {
		time.Sleep(5 * time.Second) // Wait before reconnecting

		logrus.Info("Attempting to reconnect to AMQP broker...")
		conn, err := amqp.Dial(connectionStr)
		if err != nil {
			logrus.Errorf("Failed to reconnect to AMQP broker: %v", err)
			continue
		}

		ch, err := conn.Channel()
		if err != nil {
			logrus.Errorf("Failed to open a channel: %v", err)
			conn.Close()
			continue
		}

		err = ch.ExchangeDeclare(
			n.exchangeName, // name
			"fanout",       // type
			true,           // durable
			false,          // auto-deleted
			false,          // internal
			false,          // no-wait
			nil,            // arguments
		)
		if err != nil {
			logrus.Errorf("Failed to declare an exchange: %v", err)
			ch.Close()
			conn.Close()
			continue
		}

		n.mutex.Lock()
		oldConn := n.conn
		oldChannel := n.channel
		n.conn = conn
		n.channel = ch
		n.mutex.Unlock()

		if oldChannel != nil {
			oldChannel.Close()
		}
		if oldConn != nil {
			oldConn.Close()
		}

		go n.monitorConnection(connectionStr)
		break
	}
}

func (n *amqpNotifier) PublishActivity(activity dto.Activity) {
	body, err := json.Marshal(activity)
	if err != nil {
		logrus.Errorf("Error marshaling activity: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n.mutex.RLock()
	channel := n.channel
	n.mutex.RUnlock()

	err = channel.PublishWithContext(
		ctx,
		n.exchangeName, // exchange
		"",             // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		logrus.Errorf("Error publishing activity: %v", err)
	}
}

func (n *amqpNotifier) Close() error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// noopNotifier keeps the application runnable without a broker.
type noopNotifier struct{}

func newNoopNotifier() Notifier {
	logrus.Warn("AMQP_URL not set, poll activity notifications disabled")
	return &noopNotifier{}
}

func (n *noopNotifier) PublishActivity(dto.Activity) {}

func (n *noopNotifier) Close() error {
	return nil
}
