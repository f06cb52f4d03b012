// Package notifier contains the concrete event listeners: thin adapters
// translating lifecycle events into outbound messages. Actual delivery
// (SMTP, SMS gateway, broker) sits behind injected senders.
package notifier

import (
	"fmt"
	"log/slog"

	"github.com/wetland/storefront-service/internal/events"
)

// SendFunc delivers one rendered message. A nil SendFunc means the adapter
// only logs, which is the development default.
type SendFunc func(subject, body string) error

// EmailNotifier renders lifecycle events into customer emails.
type EmailNotifier struct {
	logger *slog.Logger
	send   SendFunc
}

func NewEmailNotifier(logger *slog.Logger, send SendFunc) *EmailNotifier {
	return &EmailNotifier{
		logger: logger.With(slog.String("notifier", "email")),
		send:   send,
	}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) Handle(event string, payload events.Payload) error {
	subject, body := renderEmail(event, payload)

	if n.send == nil {
		n.logger.Info("email notification",
			slog.Int64("order_id", payload.OrderID),
			slog.String("subject", subject),
		)
		return nil
	}
	if err := n.send(subject, body); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderEmail(event string, payload events.Payload) (subject, body string) {
	switch {
	case event == "order_created":
		subject = fmt.Sprintf("Order #%d confirmed", payload.OrderID)
		body = fmt.Sprintf("Thanks for your purchase! Order #%d was received and is awaiting payment.", payload.OrderID)
	case payload.Status == "Paid":
		subject = fmt.Sprintf("Payment received for order #%d", payload.OrderID)
		body = fmt.Sprintf("We received the payment for order #%d and are preparing your items.", payload.OrderID)
	case payload.Status == "Shipped":
		subject = fmt.Sprintf("Order #%d is on its way", payload.OrderID)
		body = fmt.Sprintf("Order #%d left our warehouse. You will get another email on delivery.", payload.OrderID)
	case payload.Status == "Delivered":
		subject = fmt.Sprintf("Order #%d delivered", payload.OrderID)
		body = fmt.Sprintf("Order #%d was delivered. We hope to see you again!", payload.OrderID)
	default:
		subject = fmt.Sprintf("Update on order #%d", payload.OrderID)
		body = fmt.Sprintf("Order #%d changed to status %s.", payload.OrderID, payload.Status)
	}
	return subject, body
}
