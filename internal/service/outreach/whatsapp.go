// Package outreach formats purchase and inquiry messages and hands them
// off as WhatsApp deep links. Output formatting only - no protocol.
package outreach

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxMessageRunes bounds the composed text before URL-encoding. WhatsApp
// link handling degrades on very long URLs, so the message is cut to a
// safe length first.
const maxMessageRunes = 800

// Inquiry is a structured purchase or consulting request.
type Inquiry struct {
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Offering string `json:"offering"`
	Need     string `json:"need"`
}

// Validate checks the inquiry has enough substance to forward.
func (i Inquiry) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&i.Contact, validation.Required, validation.Length(1, 120)),
	)
}

// Composer builds wa.me deep links for one business number.
type Composer struct {
	number string
}

// NewComposer creates a composer. number is the target WhatsApp number in
// international digits-only form (e.g. "6281234567890").
func NewComposer(number string) *Composer {
	return &Composer{number: number}
}

// Compose formats the inquiry as a text block, truncates it to a safe
// length, and returns the URL-encoded deep link.
func (c *Composer) Compose(inq Inquiry) (string, error) {
	if err := inq.Validate(); err != nil {
		return "", fmt.Errorf("compose inquiry: %w", err)
	}

	var b strings.Builder
	b.WriteString("Halo Chef Anton!\n")
	fmt.Fprintf(&b, "Nama: %s\n", inq.Name)
	fmt.Fprintf(&b, "Kontak: %s\n", inq.Contact)
	if inq.Offering != "" {
		fmt.Fprintf(&b, "Tertarik dengan: %s\n", inq.Offering)
	}
	if inq.Need != "" {
		fmt.Fprintf(&b, "Kebutuhan: %s\n", inq.Need)
	}

	message := truncateRunes(b.String(), maxMessageRunes)
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.number, url.QueryEscape(message)), nil
}

// truncateRunes cuts s to at most n runes, never splitting a rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
