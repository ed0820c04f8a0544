package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-onboard/internal/events"
	"go-onboard/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeUserLifecycle turns user_onboarded and user_reassigned events
// into notification rows. Message body failures are committed and
// skipped; persistence failures leave the message uncommitted so it is
// retried.
func ConsumeUserLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	notificationService notification.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_lifecycle")
	log.Info("user lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user lifecycle consumer stopped")
				return
			}
			log.Error("fetch user lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.UserLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = notificationService.Create(ctx, notification.CreateNotificationRequest{
			EventType: event.EventType,
			Message:   lifecycleMessage(event),
		})
		if err != nil {
			log.Error("create notification from lifecycle event failed",
				zap.String("user_id", event.UserID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("notification created from lifecycle event",
			zap.String("user_id", event.UserID),
			zap.String("event_type", event.EventType),
		)
	}
}

func lifecycleMessage(event events.UserLifecycleEvent) string {
	switch event.EventType {
	case events.UserReassignedEventType:
		return fmt.Sprintf("%s was moved to a new department and received %d onboarding tasks", event.UserName, event.TaskCount)
	default:
		return fmt.Sprintf("%s started onboarding with %d tasks", event.UserName, event.TaskCount)
	}
}
