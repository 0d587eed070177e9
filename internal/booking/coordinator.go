// Package booking executes a booking as an ordered sequence of side
// effects with explicit degraded-mode and failure semantics.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/markdias/hair.studio9381-sub000/internal/events"
	"github.com/markdias/hair.studio9381-sub000/internal/gcal"
	"github.com/markdias/hair.studio9381-sub000/internal/metrics"
	"github.com/markdias/hair.studio9381-sub000/internal/models"
	"github.com/markdias/hair.studio9381-sub000/internal/notify"
)

// CalendarWriter creates events on the external calendar.
type CalendarWriter interface {
	Configured() bool
	CreateEvent(ctx context.Context, calendarID string, input gcal.EventInput) (string, error)
}

// BindingStore resolves a stylist name to a calendar id.
type BindingStore interface {
	GetStylistCalendar(ctx context.Context, stylist string) (string, error)
}

// ClientStore upserts customer records.
type ClientStore interface {
	UpsertClient(ctx context.Context, email, name, phone string) error
}

// ConfirmationChannel delivers the customer confirmation.
type ConfirmationChannel interface {
	Configured() bool
	Subject() string
	Template() string
	Send(ctx context.Context, to, subject, body string) error
}

// SalonInfo feeds the confirmation template.
type SalonInfo struct {
	Phone    string
	Location string
}

// Coordinator validates a booking request, resolves the target
// calendar and performs the side-effect sequence in strict order.
type Coordinator struct {
	calendar CalendarWriter
	bindings BindingStore
	clients  ClientStore
	channel  ConfirmationChannel
	bus      *events.Bus

	defaultCalendarID string
	salon             SalonInfo
	loc               *time.Location
	logger            *zerolog.Logger
}

// NewCoordinator wires the coordinator. bus and channel may be nil.
func NewCoordinator(
	calendar CalendarWriter,
	bindings BindingStore,
	clients ClientStore,
	channel ConfirmationChannel,
	bus *events.Bus,
	defaultCalendarID string,
	salon SalonInfo,
	loc *time.Location,
	logger *zerolog.Logger,
) *Coordinator {
	if loc == nil {
		loc = time.Local
	}
	return &Coordinator{
		calendar:          calendar,
		bindings:          bindings,
		clients:           clients,
		channel:           channel,
		bus:               bus,
		defaultCalendarID: defaultCalendarID,
		salon:             salon,
		loc:               loc,
		logger:            logger,
	}
}

// CreateBooking runs the booking sequence:
// validate, resolve calendar, degrade if unconfigured, upsert client
// (best-effort), write the calendar event (fatal on failure), send the
// confirmation (best-effort), report the created event id.
//
// The availability read and this write are not transactional; two
// concurrent requests for the same slot can both succeed. The calendar
// write is authoritative, the availability read merely advisory.
func (c *Coordinator) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	if err := validate(req); err != nil {
		metrics.IncBookingCreated("validation_error")
		return nil, err
	}

	calendarID := c.resolveCalendar(ctx, req.Stylist)

	if !c.calendar.Configured() {
		c.logger.Warn().
			Str("service", req.Service).
			Str("date", req.Date).
			Msg("calendar unconfigured; booking simulated")
		metrics.IncBookingCreated("simulated")
		c.publish(events.TypeBookingSimulated, req, "", true)
		return &models.BookingResult{Success: true, Simulated: true, Message: "simulated"}, nil
	}

	if err := c.clients.UpsertClient(ctx, req.Email, req.Name, req.Phone); err != nil {
		// Best-effort: a client-sync failure never aborts the booking.
		c.logger.Error().Err(err).Str("email", req.Email).Msg("client upsert failed")
	}

	start, end, err := req.EventTimes(c.loc)
	if err != nil {
		metrics.IncBookingCreated("validation_error")
		return nil, &ValidationError{Missing: []string{"date", "time"}}
	}

	eventID, err := c.calendar.CreateEvent(ctx, calendarID, gcal.EventInput{
		Summary:     fmt.Sprintf("%s: %s", req.Service, req.Name),
		Description: eventDescription(req),
		Start:       start,
		End:         end,
	})
	if err != nil {
		metrics.IncBookingCreated("calendar_error")
		return nil, &CalendarWriteError{Err: err}
	}

	c.sendConfirmation(ctx, req)

	c.logger.Info().
		Str("event_id", eventID).
		Str("calendar_id", calendarID).
		Str("service", req.Service).
		Str("date", req.Date).
		Str("time", req.Time).
		Msg("booking created")
	metrics.IncBookingCreated("created")
	c.publish(events.TypeBookingCreated, req, eventID, false)

	return &models.BookingResult{Success: true, EventID: eventID}, nil
}

func validate(req models.BookingRequest) error {
	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// resolveCalendar looks up the stylist binding, silently falling back
// to the default calendar on a miss or lookup failure.
func (c *Coordinator) resolveCalendar(ctx context.Context, stylist string) string {
	if stylist == "" || c.bindings == nil {
		return c.defaultCalendarID
	}
	id, err := c.bindings.GetStylistCalendar(ctx, stylist)
	if err != nil || id == "" {
		c.logger.Debug().Str("stylist", stylist).Msg("no calendar binding; using default calendar")
		return c.defaultCalendarID
	}
	return id
}

func eventDescription(req models.BookingRequest) string {
	stylist := req.Stylist
	if stylist == "" {
		stylist = "Any"
	}
	return fmt.Sprintf("Stylist: %s\nService: %s\nPhone: %s\nEmail: %s",
		stylist, req.Service, req.Phone, req.Email)
}

// sendConfirmation renders and sends the customer confirmation.
// Failures are logged and swallowed.
func (c *Coordinator) sendConfirmation(ctx context.Context, req models.BookingRequest) {
	if c.channel == nil || !c.channel.Configured() {
		return
	}

	body := notify.Render(c.channel.Template(), map[string]string{
		"name":           req.Name,
		"service":        req.Service,
		"stylist":        req.Stylist,
		"date":           req.Date,
		"time":           req.Time,
		"salon_phone":    c.salon.Phone,
		"salon_location": c.salon.Location,
	})

	if err := c.channel.Send(ctx, req.Email, c.channel.Subject(), body); err != nil {
		c.logger.Error().Err(err).Str("email", req.Email).Msg("confirmation send failed")
		metrics.IncNotification("email", "failed")
		return
	}
	metrics.IncNotification("email", "sent")
}

func (c *Coordinator) publish(eventType string, req models.BookingRequest, eventID string, simulated bool) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(eventType, events.BookingEvent{
		Request:   req,
		EventID:   eventID,
		Simulated: simulated,
	})
}
