package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// EventPublisher publishes JSON-encoded messages; *helpers.RabbitPublisher
// satisfies it. Services treat a nil publisher as "auditing disabled".
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// AuditEvent records a record-store mutation for the audit worker.
type AuditEvent struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// publishAudit sends an audit event, logging instead of failing the request
// when the broker is unavailable.
func publishAudit(ctx context.Context, pub EventPublisher, logger *logrus.Logger, entity, action, id string) {
	if pub == nil {
		return
	}
	ev := AuditEvent{Entity: entity, Action: action, ID: id, At: time.Now().UTC()}
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"entity": entity,
			"action": action,
			"id":     id,
		}).Warn("audit publish failed")
	}
}
