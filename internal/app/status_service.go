// internal/app/status_service.go
package app

import (
	"context"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Poller fetches the latest homework state since a cursor.
type Poller interface {
	Poll(ctx context.Context, cursor homework.Cursor) (homework.PollResult, error)
}

// MessageNotifier delivers a chat message.
type MessageNotifier interface {
	Notify(message string) error
}

// Outcome summarises what a single cycle did.
type Outcome int

const (
	OutcomeNotified          Outcome = iota // New status message delivered
	OutcomeUnchanged                        // Status message equal to the last one, nothing sent
	OutcomeFailureNotified                  // Operational failure reported to the chat
	OutcomeFailureSuppressed                // Same failure as last time, nothing sent
	OutcomeDeliveryFailed                   // Chat delivery itself failed
	OutcomeCanceled                         // Cycle interrupted by shutdown, nothing sent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotified:
		return "notified"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailureNotified:
		return "failure_notified"
	case OutcomeFailureSuppressed:
		return "failure_suppressed"
	case OutcomeDeliveryFailed:
		return "delivery_failed"
	case OutcomeCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// FailureMessage is the chat text for an operational failure.
func FailureMessage(err error) string {
	return fmt.Sprintf("Сбой в работе программы: %v", err)
}

// StatusService runs the poll-evaluate-notify cycle. It is not safe for
// concurrent use; the scheduler guarantees one Tick at a time.
type StatusService struct {
	poller   Poller
	notifier MessageNotifier
	tracker  *ChangeTracker
	cursor   homework.Cursor
	logger   *logrus.Entry
}

func NewStatusService(
	poller Poller,
	notifier MessageNotifier,
	tracker *ChangeTracker,
	start homework.Cursor,
	logger *logrus.Entry,
) *StatusService {
	if tracker == nil {
		tracker = NewChangeTracker()
	}
	return &StatusService{
		poller:   poller,
		notifier: notifier,
		tracker:  tracker,
		cursor:   start,
		logger:   logger.WithField("component", "status_service"),
	}
}

// Cursor returns the lower bound used by the next poll.
func (s *StatusService) Cursor() homework.Cursor {
	return s.cursor
}

// Tick performs one cycle. It never returns an error: every failure is
// classified, logged and, when new, reported to the chat.
func (s *StatusService) Tick(ctx context.Context) Outcome {
	log := s.logger.WithFields(logrus.Fields{
		"cycle_id": uuid.NewString(),
		"cursor":   int64(s.cursor),
	})
	log.Debug("Polling homework status API")

	res, err := s.poller.Poll(ctx, s.cursor)
	if err != nil {
		if ctx.Err() != nil {
			// Shutting down: the failure is ours, not the API's.
			log.WithError(err).Info("Poll cycle canceled")
			return OutcomeCanceled
		}
		return s.handleFailure(log, err)
	}

	message, err := res.Message()
	if err != nil {
		// Cursor stays put so the same record is evaluated again next cycle.
		return s.handleFailure(log, err)
	}

	if res.Next != s.cursor {
		log.WithField("next_cursor", int64(res.Next)).Info("Cursor advanced")
	}
	s.cursor = res.Next

	if !s.tracker.ShouldSendInfo(message) {
		log.Debug("Status message unchanged, skipping notification")
		return OutcomeUnchanged
	}

	if err := s.notifier.Notify(message); err != nil {
		log.WithError(err).Error("Failed to deliver status message")
		return OutcomeDeliveryFailed
	}
	s.tracker.RecordInfo(message)
	log.WithField("message", message).Info("Status message sent")
	return OutcomeNotified
}

func (s *StatusService) handleFailure(log *logrus.Entry, err error) Outcome {
	kind := homework.KindOf(err)
	log = log.WithError(err).WithField("error_kind", kind.String())

	if errors.Is(err, homework.ErrDelivery) {
		log.Error("Delivery failure reported by poll chain")
		return OutcomeDeliveryFailed
	}
	log.Error("Operational failure during poll")

	message := FailureMessage(err)
	if !s.tracker.ShouldSendError(message) {
		log.Debug("Failure message unchanged, skipping notification")
		return OutcomeFailureSuppressed
	}

	if nerr := s.notifier.Notify(message); nerr != nil {
		log.WithField("delivery_error", nerr.Error()).Error("Failed to deliver failure message")
		return OutcomeDeliveryFailed
	}
	s.tracker.RecordError(message)
	return OutcomeFailureNotified
}
