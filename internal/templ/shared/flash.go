package shared

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// FlashType selects the styling of a flash message.
type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
	FlashInfo    FlashType = "info"
)

// Flash is a one-off message shown above a form.
type Flash struct {
	Type    FlashType
	Message string
}

const flashBase = "mb-4 rounded-md border px-4 py-3 text-sm bg-blue-50 border-blue-200 text-blue-800"

var flashVariants = map[FlashType]string{
	FlashSuccess: "bg-green-50 border-green-200 text-green-800",
	FlashError:   "bg-red-50 border-red-200 text-red-800",
}

// FlashClass returns the merged Tailwind classes for a flash type.
func FlashClass(t FlashType) string {
	return twmerge.Merge(flashBase, flashVariants[t])
}

// FlashMessage renders f, or nothing when f is nil.
func FlashMessage(f *Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if f == nil {
			return nil
		}
		hw := NewWriter(w)
		hw.Raw(`<div role="alert"`)
		hw.Attr("class", FlashClass(f.Type))
		hw.Raw(">")
		hw.Text(f.Message)
		hw.Raw("</div>")
		return hw.Err()
	})
}
