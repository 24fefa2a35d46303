// Package render builds the plain-text test email documents written to
// disk. Rendering is pure string work: literal {link} substitution plus
// fixed headers and a footer exposing the tracking token.
package render

import (
	"fmt"
	"strings"

	"github.com/example/phishtrack/internal/catalog"
)

// TrackingURL synthesizes the tracking link embedded in a test email.
func TrackingURL(host, token string) string {
	return fmt.Sprintf("http://%s/track/%s", host, token)
}

// Substitute replaces the literal {link} placeholder in a template body.
func Substitute(body, trackingURL string) string {
	return strings.ReplaceAll(body, "{link}", trackingURL)
}

// Filename returns the normalized output filename for a recipient
// address: the address with '@' replaced by '_', plus a .txt extension.
func Filename(email string) string {
	return strings.ReplaceAll(email, "@", "_") + ".txt"
}

// BuildDocument renders the full email document for one recipient.
// The footer names the campaign and exposes the tracking token in clear
// text: these are local test artifacts, not real messages.
func BuildDocument(tmpl catalog.Template, campaignName, recipient, trackingURL, token string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\n", tmpl.Subject)
	fmt.Fprintf(&b, "From: %s\n", tmpl.Sender)
	fmt.Fprintf(&b, "\n%s\n", Substitute(tmpl.Body, trackingURL))
	fmt.Fprintf(&b, "\n---\n")
	fmt.Fprintf(&b, "Test email for campaign: %s\n", campaignName)
	fmt.Fprintf(&b, "Tracking token: %s\n", token)
	return b.String()
}
