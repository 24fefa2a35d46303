// Package filesystem contains adapters that drive the local filesystem.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/phishtrack/internal/ports/secondary"
)

// Mailbox writes rendered email documents into a local directory.
type Mailbox struct{}

// NewMailbox creates a new filesystem mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// WriteEmail writes a rendered document into dir under filename,
// creating dir if needed.
func (m *Mailbox) WriteEmail(ctx context.Context, dir, filename, body string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return "", fmt.Errorf("failed to write email %s: %w", filename, err)
	}

	return path, nil
}

// Ensure Mailbox implements the interface.
var _ secondary.EmailWriter = (*Mailbox)(nil)
