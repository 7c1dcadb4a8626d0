// Package chat renders the view a successful registration lands on.
package chat

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/DukeRupert/chatform/internal/templ/shared"
)

// ChatPage renders the chat landing view.
func ChatPage() templ.Component {
	return shared.Layout("Chat", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := shared.NewWriter(w)
		hw.Raw(`<section id="chat" class="w-full rounded-2xl bg-white p-10 shadow">`)
		hw.Raw(`<h1 class="text-2xl font-semibold">Chat</h1>`)
		hw.Raw(`<p class="mt-2 text-slate-500">You're in. Say hello.</p>`)
		hw.Raw(`</section>`)
		return hw.Err()
	}))
}
