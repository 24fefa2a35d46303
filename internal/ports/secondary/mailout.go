package secondary

import "context"

// EmailWriter defines the secondary port for writing rendered email
// documents. This tool never sends mail; it only writes files that look
// like email.
type EmailWriter interface {
	// WriteEmail writes a rendered document into dir under filename,
	// creating dir if needed. Returns the full path written.
	WriteEmail(ctx context.Context, dir, filename, body string) (string, error)
}
