// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package messaging_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoventa-mx/videoventa/internal/messaging"
)

/*
TestBuildWhatsAppLink checks number normalization and message encoding.
*/
func TestBuildWhatsAppLink(t *testing.T) {
	link := messaging.BuildWhatsAppLink("+52 55 1234 5678", "¡Hola! ¿Podemos proceder?")

	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=+525512345678&text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "¡Hola! ¿Podemos proceder?", parsed.Query().Get("text"))
}

/*
TestNarratedOrderMessage checks the composed Spanish order text.
*/
func TestNarratedOrderMessage(t *testing.T) {
	message := messaging.NarratedOrderMessage(messaging.NarratedOrder{
		DurationLabel: "5-10 minutos",
		QuantityLabel: "30 videos",
		TotalMXNCents: 288000,
		MinDays:       4,
		MaxDays:       10,
	})

	assert.Contains(t, message, "videos narrados")
	assert.Contains(t, message, "📏 Duración: 5-10 minutos")
	assert.Contains(t, message, "📦 Cantidad: 30 videos")
	assert.Contains(t, message, "⏱️ Entrega: 4-10 días")
	assert.Contains(t, message, "💰 Total: $2,880 MXN")
	assert.Contains(t, message, "¿Podemos proceder con el pedido?")
}

/*
TestSingingOrderMessage checks the package order text.
*/
func TestSingingOrderMessage(t *testing.T) {
	message := messaging.SingingOrderMessage(messaging.SingingOrder{
		Label:      "Premium",
		MXNCents:   550000,
		VideoCount: 60,
		MinDays:    8,
		MaxDays:    15,
	})

	assert.Contains(t, message, "videos cantados")
	assert.Contains(t, message, "📦 Paquete: Premium")
	assert.Contains(t, message, "💰 Precio: $5,500 MXN")
	assert.Contains(t, message, "🎬 Videos: 60")
	assert.Contains(t, message, "⏱️ Entrega: 8-15 días")
}

/*
TestSupportMessage checks the portal support text.
*/
func TestSupportMessage(t *testing.T) {
	assert.Equal(t,
		"Hola, soy Casa Blanca y necesito soporte con mi proyecto.",
		messaging.SupportMessage("Casa Blanca"),
	)
}

/*
TestBuildMessengerLink checks the m.me link shape.
*/
func TestBuildMessengerLink(t *testing.T) {
	assert.Equal(t, "https://m.me/videoventa.mx", messaging.BuildMessengerLink("videoventa.mx"))
}
