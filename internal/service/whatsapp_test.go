package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/akronstore/akron_api/internal/models"
)

var (
	// Monday 10:00 and Sunday 10:00.
	openTime   = time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	closedTime = time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
)

func TestWhatsAppComposer_Link(t *testing.T) {
	c := NewWhatsAppComposer("5581991103194")
	link := c.Link("Olá! Tudo bem?")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5581991103194?text="))
	assert.Contains(t, link, "Ol%C3%A1%21+Tudo+bem%3F")
}

func TestWhatsAppComposer_ProductMessage(t *testing.T) {
	c := NewWhatsAppComposer("5581991103194")
	op := 119.9
	promo := models.Product{Name: "Oversized Preta Premium", Price: 89.9, OriginalPrice: &op}
	plain := models.Product{Name: "Oversized Branca Classic", Price: 94.9}

	t.Run("discounted product shows both prices", func(t *testing.T) {
		msg := c.ProductMessage(promo, "Preto", "M", openTime)
		assert.Contains(t, msg, "Tenho interesse na camiseta Oversized Preta Premium")
		assert.Contains(t, msg, "(25% OFF - De R$ 119,90 por R$ 89,90)")
		assert.Contains(t, msg, "🎨 Cor: Preto")
		assert.Contains(t, msg, "📏 Tamanho: M")
	})

	t.Run("full-price product shows a single price", func(t *testing.T) {
		msg := c.ProductMessage(plain, "", "", openTime)
		assert.Contains(t, msg, "(R$ 94,90)")
		assert.NotContains(t, msg, "OFF")
		assert.NotContains(t, msg, "Cor:")
		assert.NotContains(t, msg, "Tamanho:")
	})

	t.Run("open hours use the online prefix", func(t *testing.T) {
		msg := c.ProductMessage(plain, "", "", openTime)
		assert.True(t, strings.HasPrefix(msg, "Estamos online agora! 🟢"))
		assert.NotContains(t, msg, "Horário de Atendimento")
	})

	t.Run("closed hours include the schedule", func(t *testing.T) {
		msg := c.ProductMessage(plain, "", "", closedTime)
		assert.Contains(t, msg, "responderemos em breve! 🟡")
		assert.Contains(t, msg, "📅 Segunda a Sexta: 8h às 18h")
		assert.Contains(t, msg, "📅 Sábado: 8h às 14h")
		assert.Contains(t, msg, "📅 Domingo: Fechado")
		// The schedule block keeps its own trailing blank line, so the body
		// sits two blank lines below it.
		assert.Contains(t, msg, "Fechado\n\n\n\nOlá!")
	})
}

func TestWhatsAppComposer_OtherMessages(t *testing.T) {
	c := NewWhatsAppComposer("5581991103194")

	t.Run("general inquiry", func(t *testing.T) {
		msg := c.GeneralMessage(openTime)
		assert.Contains(t, msg, "Gostaria de conhecer mais sobre os produtos AKRON.")
	})

	t.Run("contact form", func(t *testing.T) {
		msg := c.ContactMessage("Ana", "ana@example.com", "Tem no tamanho GG?", closedTime)
		assert.Contains(t, msg, "Contato via site AKRON:")
		assert.Contains(t, msg, "Nome: Ana")
		assert.Contains(t, msg, "Email: ana@example.com")
		assert.Contains(t, msg, "Mensagem: Tem no tamanho GG?")
		assert.Contains(t, msg, "Horário de Atendimento")
	})

	t.Run("newsletter signup", func(t *testing.T) {
		msg := c.NewsletterMessage("ana@example.com", openTime)
		assert.Contains(t, msg, "Newsletter AKRON - Novo cadastro:")
		assert.Contains(t, msg, "Email: ana@example.com")
	})
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "89,90", FormatPrice(89.9))
	assert.Equal(t, "119,90", FormatPrice(119.9))
	assert.Equal(t, "100,00", FormatPrice(100))
}
