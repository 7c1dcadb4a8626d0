package auth

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/DukeRupert/chatform/internal/form"
)

const (
	inputBase  = "block w-full rounded-md border border-slate-300 bg-white px-3 py-2 text-sm shadow-sm focus:outline-none focus:ring-2 focus:ring-indigo-500"
	inputError = "border-red-500 focus:ring-red-500"

	feedbackBase  = "mt-1 flex min-h-5 items-center gap-1 text-xs text-slate-500"
	feedbackError = "text-red-600"
)

// InputClass returns the input classes, switching to the error variant when
// msg is non-empty.
func InputClass(msg string) string {
	if msg == "" {
		return inputBase
	}
	return twmerge.Merge(inputBase, inputError)
}

func feedbackClass(msg string) string {
	if msg == "" {
		return feedbackBase
	}
	return twmerge.Merge(feedbackBase, feedbackError)
}

// echoedValue is the value the feedback slot judges the check mark by.
// Passwords are never echoed, so the check mark would lie.
func echoedValue(in inputSpec, data form.Data) string {
	if !in.Echo {
		return ""
	}
	return data.Value(in.Field)
}

func showCheck(field form.Field, value string) bool {
	in, _ := specFor(field)
	return in.CheckMark && value != ""
}
