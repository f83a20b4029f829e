package notify

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/models"
)

// Notifier is the fire-and-forget sink the booking flows talk to.
// Delivery is best-effort; a failed notification never fails a booking.
type Notifier interface {
	Notify(recipientID uint, message string, link string)
}

type Notification struct {
	RecipientID uint
	Message     string
	Link        string
}

// Sink persists one notification and maintains the unread counter.
type Sink interface {
	Deliver(n Notification) error
}

// Dispatcher decouples booking flows from notification writes through a
// buffered channel and a single worker goroutine.
type Dispatcher struct {
	sink  Sink
	queue chan Notification
	log   *zap.SugaredLogger
}

func NewDispatcher(sink Sink, log *zap.SugaredLogger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Notification, 100),
		log:   log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		if err := d.sink.Deliver(n); err != nil {
			d.log.Errorw("notification delivery failed",
				"recipient_id", n.RecipientID,
				"error", err,
			)
		}
	}
}

func (d *Dispatcher) Notify(recipientID uint, message string, link string) {
	select {
	case d.queue <- Notification{RecipientID: recipientID, Message: message, Link: link}:
	default:
		// Queue full: drop rather than block a booking flow.
		d.log.Warnw("notification queue full, dropping",
			"recipient_id", recipientID,
		)
	}
}

// --------------------------------------------------
// DB + Redis sink
// --------------------------------------------------

// DBSink writes the notification row and bumps the recipient's unread
// counter in Redis (the bell badge). The counter is a cache; the row is
// the source of truth.
type DBSink struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewDBSink(db *gorm.DB, rdb *redis.Client) *DBSink {
	return &DBSink{db: db, rdb: rdb}
}

func (s *DBSink) Deliver(n Notification) error {
	row := models.Notification{
		RecipientID: n.RecipientID,
		Message:     n.Message,
		Link:        n.Link,
	}

	if err := s.db.Create(&row).Error; err != nil {
		return err
	}

	if s.rdb != nil {
		// Best-effort; the DB fallback recomputes on cache miss.
		s.rdb.Incr(context.Background(), UnreadKey(n.RecipientID))
	}

	return nil
}
