package voice

import (
	"strings"
	"time"
)

// DateParser resolves a spoken date phrase relative to base.
type DateParser interface {
	Parse(phrase string, base time.Time) (time.Time, error)
}

// Interpreter turns transcripts into draft updates. It holds no state between
// calls and is safe for concurrent use.
type Interpreter struct {
	dates DateParser
	now   func() time.Time
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the reference time used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) { i.now = now }
}

// New creates an Interpreter resolving dates with dates.
func New(dates DateParser, opts ...Option) *Interpreter {
	i := &Interpreter{dates: dates, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// fieldRule applies one keyword extractor to the draft.
type fieldRule func(i *Interpreter, text string, f *Fields)

// Each rule is independent; their order only matters for readability.
var rules = []fieldRule{
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractTitle(text); ok {
			f.Title = v
		}
	},
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractDescription(text); ok {
			f.Description = v
		}
	},
	func(i *Interpreter, text string, f *Fields) {
		phrase, ok := extractDatePhrase(text)
		if !ok || i.dates == nil {
			return
		}
		if d, err := i.dates.Parse(phrase, i.now()); err == nil {
			f.Date = d
		}
	},
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractTime(text); ok {
			f.Time = v
		}
	},
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractCategory(text); ok {
			f.Category = v
		}
	},
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractTags(text); ok {
			f.Tags = v
		}
	},
	func(_ *Interpreter, text string, f *Fields) {
		if v, ok := extractPriority(text); ok {
			f.Priority = v
		}
	},
}

// Interpret applies every recognized keyword segment of transcript to current
// and reports whether the transcript asked for the draft to be submitted.
// Unrecognized or malformed segments leave their field untouched.
func (i *Interpreter) Interpret(transcript string, current Fields) (Fields, bool) {
	text := strings.ToLower(transcript)
	updated := current.clone()

	for _, apply := range rules {
		apply(i, text, &updated)
	}

	return updated, wantsSubmit(text)
}
