package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/akronstore/akron_api/internal/models"
)

// Message prefixes and the weekly schedule, spelled out exactly as the shop
// sends them. Closed-hours messages carry the full schedule.
const (
	prefixOpen   = "Estamos online agora! 🟢"
	prefixClosed = "Estamos fora do horário de atendimento, mas responderemos em breve! 🟡\n\n" +
		"Horário de Atendimento:\n" +
		"📅 Segunda a Sexta: 8h às 18h\n" +
		"📅 Sábado: 8h às 14h\n" +
		"📅 Domingo: Fechado\n\n"
)

// WhatsAppComposer builds the plain-text messages and deep links that are
// this system's entire checkout and contact mechanism. Its responsibility
// ends at producing the link; there is no delivery confirmation.
type WhatsAppComposer struct {
	number string
}

// NewWhatsAppComposer constructs a composer for the given destination number.
func NewWhatsAppComposer(number string) *WhatsAppComposer {
	return &WhatsAppComposer{number: number}
}

// Link percent-encodes the message into the wa.me deep-link URL.
func (w *WhatsAppComposer) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", w.number, url.QueryEscape(message))
}

// ProductMessage composes the purchase-interest message for a product with
// its resolved color and size selection. Empty color or size lines are
// omitted. The price clause is discount-aware.
func (w *WhatsAppComposer) ProductMessage(p models.Product, color, size string, now time.Time) string {
	var priceInfo string
	if discount := CalculateDiscount(p.Price, p.OriginalPrice); discount > 0 {
		priceInfo = fmt.Sprintf(" (%d%% OFF - De R$ %s por R$ %s)",
			discount, FormatPrice(*p.OriginalPrice), FormatPrice(p.Price))
	} else {
		priceInfo = fmt.Sprintf(" (R$ %s)", FormatPrice(p.Price))
	}

	var colorInfo, sizeInfo string
	if color != "" {
		colorInfo = "\n🎨 Cor: " + color
	}
	if size != "" {
		sizeInfo = "\n📏 Tamanho: " + size
	}

	return fmt.Sprintf("%s\n\nOlá! Tenho interesse na camiseta %s%s.%s%s\n\nGostaria de mais informações sobre disponibilidade e formas de pagamento.",
		statusPrefix(now), p.Name, priceInfo, colorInfo, sizeInfo)
}

// GeneralMessage composes the general-inquiry message.
func (w *WhatsAppComposer) GeneralMessage(now time.Time) string {
	return statusPrefix(now) + "\n\nOlá! Gostaria de conhecer mais sobre os produtos AKRON."
}

// ContactMessage composes the contact-form message.
func (w *WhatsAppComposer) ContactMessage(name, email, message string, now time.Time) string {
	return fmt.Sprintf("%s\n\nContato via site AKRON:\nNome: %s\nEmail: %s\nMensagem: %s",
		statusPrefix(now), name, email, message)
}

// NewsletterMessage composes the newsletter sign-up message.
func (w *WhatsAppComposer) NewsletterMessage(email string, now time.Time) string {
	return fmt.Sprintf("%s\n\nNewsletter AKRON - Novo cadastro:\nEmail: %s", statusPrefix(now), email)
}

// statusPrefix returns the business-hours line every outbound message opens
// with: a short online notice, or the closed notice plus the full schedule.
func statusPrefix(now time.Time) string {
	if IsBusinessHours(now) {
		return prefixOpen
	}
	return prefixClosed
}

// FormatPrice renders a price the way the shop writes it: two decimals with
// a comma separator.
func FormatPrice(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
