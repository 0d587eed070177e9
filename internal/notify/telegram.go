package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// AdminNotifier pushes a short new-booking alert to the salon staff
// Telegram chat. Strictly best-effort: failures are logged by the
// caller and never affect the booking.
type AdminNotifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	logger  *zerolog.Logger
}

// NewAdminNotifier creates the Telegram channel. An empty token yields
// an unconfigured notifier.
func NewAdminNotifier(token string, chatID int64, logger *zerolog.Logger) (*AdminNotifier, error) {
	n := &AdminNotifier{
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		logger:  logger,
	}
	if token == "" || chatID == 0 {
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot
	logger.Info().Str("bot", bot.Self.UserName).Msg("admin telegram notifier initialized")
	return n, nil
}

// Configured reports whether alerts can be delivered.
func (n *AdminNotifier) Configured() bool {
	return n != nil && n.bot != nil && n.chatID != 0
}

// NotifyBooking sends the staff alert for a committed booking.
func (n *AdminNotifier) NotifyBooking(ctx context.Context, req models.BookingRequest, eventID string) error {
	if !n.Configured() {
		return nil
	}
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	stylist := req.Stylist
	if stylist == "" {
		stylist = "any stylist"
	}

	text := fmt.Sprintf(
		"New booking\n%s — %s\n%s at %s\nClient: %s (%s, %s)\nEvent: %s",
		req.Service, stylist, req.Date, req.Time, req.Name, req.Email, req.Phone, eventID,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram alert: %w", err)
	}
	return nil
}
