package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMailbox_WriteEmail(t *testing.T) {
	mailbox := NewMailbox()
	dir := filepath.Join(t.TempDir(), "emails")

	path, err := mailbox.WriteEmail(context.Background(), dir, "alice_x.com.txt", "To: alice@x.com\n")
	if err != nil {
		t.Fatalf("WriteEmail failed: %v", err)
	}

	if path != filepath.Join(dir, "alice_x.com.txt") {
		t.Errorf("unexpected path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written email: %v", err)
	}
	if string(data) != "To: alice@x.com\n" {
		t.Errorf("unexpected content: %q", string(data))
	}
}

func TestMailbox_WriteEmail_CreatesNestedDir(t *testing.T) {
	mailbox := NewMailbox()
	dir := filepath.Join(t.TempDir(), "a", "b", "emails")

	if _, err := mailbox.WriteEmail(context.Background(), dir, "bob_x.com.txt", "body"); err != nil {
		t.Fatalf("WriteEmail failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "bob_x.com.txt")); err != nil {
		t.Errorf("email file missing: %v", err)
	}
}

func TestMailbox_WriteEmail_Overwrite(t *testing.T) {
	mailbox := NewMailbox()
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := mailbox.WriteEmail(ctx, dir, "x.txt", "first"); err != nil {
		t.Fatalf("WriteEmail failed: %v", err)
	}
	if _, err := mailbox.WriteEmail(ctx, dir, "x.txt", "second"); err != nil {
		t.Fatalf("WriteEmail overwrite failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "x.txt"))
	if string(data) != "second" {
		t.Errorf("expected overwrite, got %q", string(data))
	}
}
