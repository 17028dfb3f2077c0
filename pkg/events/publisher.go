package events

import (
	"context"
	"time"

	"github.com/LeQuyetTien/vidly/pkg/model"
)

const (
	TypeRentalCreated  = "rental.created"
	TypeRentalReturned = "rental.returned"
)

// RentalEvent is the JSON envelope published for rental lifecycle changes.
type RentalEvent struct {
	EventID    string        `json:"eventId"`
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurredAt"`
	Rental     *model.Rental `json:"rental"`
}

// Publisher announces rental lifecycle changes to downstream consumers.
// Publishing is best effort: the rental transaction has already committed
// by the time an event goes out, so failures are logged, never returned to
// the HTTP caller.
type Publisher interface {
	RentalCreated(ctx context.Context, rental *model.Rental) error
	RentalReturned(ctx context.Context, rental *model.Rental) error
	Close() error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) RentalCreated(context.Context, *model.Rental) error  { return nil }
func (NoopPublisher) RentalReturned(context.Context, *model.Rental) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }
