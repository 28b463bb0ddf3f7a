// Package notifier hands verification and reset links to an out-of-band
// delivery channel.
package notifier

import (
	"context"

	"github.com/vibast-solutions/ms-go-authn/app/entity"

	"github.com/sirupsen/logrus"
)

type Message struct {
	AccountID string
	Email     string
	Purpose   entity.Purpose
	Link      string
}

type Notifier interface {
	Deliver(ctx context.Context, msg Message) error
}

// LogNotifier writes deliveries to the log. The link carries a live token so
// it is only emitted at debug level.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Deliver(_ context.Context, msg Message) error {
	entry := n.logger.WithFields(logrus.Fields{
		"account_id": msg.AccountID,
		"email":      msg.Email,
		"purpose":    msg.Purpose,
	})
	entry.Info("Notification dispatched")
	entry.WithField("link", msg.Link).Debug("Notification link")
	return nil
}
