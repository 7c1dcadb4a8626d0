package chat

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestChatPage(t *testing.T) {
	var buf bytes.Buffer
	if err := ChatPage().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, `id="chat"`) {
		t.Errorf("expected chat section, got: %s", html)
	}
	if !strings.Contains(html, "<title>Chat</title>") {
		t.Errorf("expected page title, got: %s", html)
	}
}
