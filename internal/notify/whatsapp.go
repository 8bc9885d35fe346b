// Package notify builds WhatsApp deep links with pre-filled messages.
// The link is advisory only: the recipient's chat client opens with the
// text loaded and the operator taps send.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rifasve/rifas/internal/customer"
	"github.com/rifasve/rifas/internal/money"
	"github.com/rifasve/rifas/internal/raffle"
	"github.com/rifasve/rifas/internal/ticket"
)

// DefaultCountryCode is prepended to local numbers (Venezuela).
const DefaultCountryCode = "58"

// NormalizePhone reduces a phone to digits and country-codes the two
// local shapes: a bare 10-digit number gets the code prefixed, an
// 11-digit number with a leading trunk "0" gets the "0" replaced.
// Anything else passes through digits-only, unmodified.
func NormalizePhone(phone, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	var b strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()

	switch {
	case len(digits) == 10:
		return countryCode + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	}

	return digits
}

// BuildChatLink returns a wa.me URL that opens a chat with the message
// pre-filled.
func BuildChatLink(phone, countryCode, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		NormalizePhone(phone, countryCode),
		url.QueryEscape(message),
	)
}

func statusLabel(s ticket.Status) string {
	switch s {
	case ticket.StatusReserved:
		return "APARTADO"
	case ticket.StatusPartiallyPaid:
		return "ABONADO"
	case ticket.StatusPaid:
		return "PAGADO"
	}

	return strings.ToUpper(string(s))
}

// TicketMessage renders the notification sent after an assignment or a
// payment: greeting, ticket number, status, raffle and draw date/time,
// current balance, closing line.
func TicketMessage(t *ticket.Ticket, c *customer.Customer, rf *raffle.Raffle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola %s! 🎉\n", c.FullName)
	fmt.Fprintf(&b, "Tu boleto *%s* del sorteo %s está %s.\n",
		raffle.FormatNumber(t.Number, rf.Capacity), rf.Name, statusLabel(t.Status))
	fmt.Fprintf(&b, "Precio: %s | Abonado: %s | Resta: %s\n",
		money.Format(t.Price), money.Format(t.AmountPaid), money.Format(t.Balance()))
	fmt.Fprintf(&b, "El sorteo es el %s a las %s.\n", rf.DrawDate.Format("02/01/2006"), rf.DrawTime)
	b.WriteString("¡Mucha suerte! 🍀")

	return b.String()
}

// TicketLink is the convenience wrapper handlers use: normalized phone
// plus the standard ticket message.
func TicketLink(t *ticket.Ticket, c *customer.Customer, rf *raffle.Raffle, countryCode string) string {
	return BuildChatLink(c.Phone, countryCode, TicketMessage(t, c, rf))
}
