package favorites

import (
	"fmt"
	"net/url"
	"strings"

	"backend/pkg/client"
)

// The cart hands off to WhatsApp: the favorites snapshot becomes a
// pre-filled outbound message. No data flows back from that action.

func formatPrice(product client.Product) string {
	if product.OnRequest || product.Price == 0 {
		return "Preço sob consulta"
	}
	return fmt.Sprintf("€%.2f", product.Price)
}

// InquiryMessage builds the outbound order-inquiry text for the given
// favorites collection.
func InquiryMessage(products []client.Product) string {
	lines := make([]string, 0, len(products))
	total := 0.0
	priced := false
	for _, product := range products {
		lines = append(lines, fmt.Sprintf("• %s - %s", product.Name, formatPrice(product)))
		if !product.OnRequest && product.Price > 0 {
			total += product.Price
			priced = true
		}
	}

	totalText := "Total: Preço sob consulta"
	if priced {
		totalText = fmt.Sprintf("Total: €%.2f", total)
	}

	return fmt.Sprintf(
		"Olá! Gostaria de fazer um pedido com os seguintes produtos:\n\n%s\n\n%s\n\nPoderia ajudar-me?",
		strings.Join(lines, "\n"),
		totalText,
	)
}

func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink is the wa.me deep link carrying the inquiry message.
// Spaces are encoded as %20, not +, matching what WhatsApp expects in
// the text parameter.
func WhatsAppLink(whatsappNumber string, products []client.Product) string {
	escaped := strings.ReplaceAll(url.QueryEscape(InquiryMessage(products)), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(whatsappNumber), escaped)
}
