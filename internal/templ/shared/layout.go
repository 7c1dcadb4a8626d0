package shared

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// Layout wraps body in the HTML document shell shared by every page.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw("<title>")
		hw.Text(title)
		hw.Raw("</title>")
		hw.Raw(`<script`)
		hw.Attr("src", htmxSrc)
		hw.Raw(`></script><script`)
		hw.Attr("src", tailwindSrc)
		hw.Raw(`></script></head>`)
		hw.Raw(`<body class="min-h-screen bg-slate-100 text-slate-900"><main class="mx-auto flex min-h-screen max-w-5xl items-center p-6">`)
		hw.Component(ctx, body)
		hw.Raw("</main></body></html>")
		return hw.Err()
	})
}
