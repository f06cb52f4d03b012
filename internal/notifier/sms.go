package notifier

import (
	"fmt"
	"log/slog"

	"github.com/wetland/storefront-service/internal/events"
)

// SMSNotifier sends short texts for the transitions customers actually wait
// on: payment confirmation and delivery. Other events are ignored.
type SMSNotifier struct {
	logger *slog.Logger
	send   SendFunc
}

func NewSMSNotifier(logger *slog.Logger, send SendFunc) *SMSNotifier {
	return &SMSNotifier{
		logger: logger.With(slog.String("notifier", "sms")),
		send:   send,
	}
}

func (n *SMSNotifier) Name() string { return "sms" }

func (n *SMSNotifier) Handle(event string, payload events.Payload) error {
	var text string
	switch payload.Status {
	case "Paid":
		text = fmt.Sprintf("Payment for order #%d confirmed.", payload.OrderID)
	case "Delivered":
		text = fmt.Sprintf("Order #%d was delivered.", payload.OrderID)
	default:
		return nil
	}

	if n.send == nil {
		n.logger.Info("sms notification",
			slog.Int64("order_id", payload.OrderID),
			slog.String("text", text),
		)
		return nil
	}
	if err := n.send("", text); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	return nil
}
