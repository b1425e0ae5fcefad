package consumer

import (
	"context"
	"encoding/json"

	"github.com/AvihaiAdler/onereport/internal/bootstrap"
	"github.com/AvihaiAdler/onereport/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRosterLifecycle audits promotion and demotion notifications. The
// reader is subscribed to both lifecycle topics; the event_type field inside
// the payload tells the transitions apart.
func ConsumeRosterLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.roster_lifecycle")
	log.Info("roster lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("roster lifecycle consumer stopped")
				return
			}
			log.Error("fetch roster lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.RosterPromotedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode roster lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "Roster identity transitioned",
			Meta: map[string]any{
				"person_id":  event.PersonID,
				"email":      event.Email,
				"role":       event.Role,
				"company":    event.Company,
				"actor_id":   event.ActorID,
				"request_id": event.RequestID,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit roster lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("roster lifecycle event audited",
			zap.String("event_type", event.EventType),
			zap.String("person_id", event.PersonID),
			zap.String("topic", msg.Topic),
		)
	}
}
