package client

import (
	"github.com/openpolls/backend/internal/dto"
	"github.com/sirupsen/logrus"
)

type Clients interface {
	Notifier() Notifier
}

type clients struct {
	notifier Notifier
}

func (c clients) Notifier() Notifier {
	return c.notifier
}

func NewClients(cfg dto.Config) Clients {
	notifier, err := NewAMQPNotifier(cfg)
	if err != nil {
		logrus.Panic(err)
	}

	return &clients{
		notifier: notifier,
	}
}
