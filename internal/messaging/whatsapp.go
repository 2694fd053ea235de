// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

/*
Package messaging composes order and support messages and the deep links
that open them in a chat app.

No message is ever sent server-side. The API hands the frontend a prefilled
link; the customer presses send themselves, which keeps the business inside
WhatsApp's terms without any API credentials.
*/
package messaging

import (
	"fmt"
	"net/url"
	"strings"
)

// # Deep Links

// BuildWhatsAppLink returns a wa link that opens a chat with the business
// number and the message prefilled. Whitespace inside the stored number is
// display formatting and is stripped for the link.
func BuildWhatsAppLink(whatsappNumber, message string) string {
	phone := strings.Join(strings.Fields(whatsappNumber), "")
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		phone, url.QueryEscape(message))
}

// BuildMessengerLink returns an m.me link for a configured Facebook page.
func BuildMessengerLink(pageID string) string {
	return "https://m.me/" + pageID
}

// # Order Messages

// NarratedOrder carries the quote facts the order message displays.
type NarratedOrder struct {
	DurationLabel string
	QuantityLabel string
	TotalMXNCents int64
	MinDays       int
	MaxDays       int
}

// SingingOrder carries the package facts the order message displays.
type SingingOrder struct {
	Label      string
	MXNCents   int64
	VideoCount int
	MinDays    int
	MaxDays    int
}

// NarratedOrderMessage composes the Spanish order message for a narrated
// video quote. Totals arrive in cents and are rendered as whole pesos, the
// way the calculator displays them.
func NarratedOrderMessage(order NarratedOrder) string {
	return fmt.Sprintf(
		"¡Hola! Me interesa ordenar videos narrados con las siguientes características:\n\n"+
			"📏 Duración: %s\n"+
			"📦 Cantidad: %s\n"+
			"⏱️ Entrega: %s\n"+
			"💰 Total: $%s MXN\n\n"+
			"¿Podemos proceder con el pedido?",
		order.DurationLabel, order.QuantityLabel,
		formatDeliveryWindow(order.MinDays, order.MaxDays), formatPesos(order.TotalMXNCents),
	)
}

// SingingOrderMessage composes the Spanish order message for a singing
// package.
func SingingOrderMessage(order SingingOrder) string {
	return fmt.Sprintf(
		"¡Hola! Me interesa ordenar el paquete de videos cantados:\n\n"+
			"📦 Paquete: %s\n"+
			"💰 Precio: $%s MXN\n"+
			"🎬 Videos: %d\n"+
			"⏱️ Entrega: %s\n\n"+
			"¿Podemos proceder con el pedido?",
		order.Label, formatPesos(order.MXNCents), order.VideoCount,
		formatDeliveryWindow(order.MinDays, order.MaxDays),
	)
}

// SupportMessage composes the portal's support message for a named client.
func SupportMessage(clientName string) string {
	return fmt.Sprintf("Hola, soy %s y necesito soporte con mi proyecto.", clientName)
}

func formatDeliveryWindow(minDays, maxDays int) string {
	return fmt.Sprintf("%d-%d días", minDays, maxDays)
}

// formatPesos renders cents as whole pesos with thousands separators
// ("288000" cents -> "2,880"). Quoted totals are whole currency units, so
// there is never a fractional remainder to show.
func formatPesos(cents int64) string {
	pesos := cents / 100
	raw := fmt.Sprintf("%d", pesos)

	var b strings.Builder
	for i, digit := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 && digit != '-' {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}
