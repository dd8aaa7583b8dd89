package out

import "context"

// Console is the token-oriented terminal the session talks to.
type Console interface {
	// Next returns the next whitespace-delimited token, or io.EOF.
	Next(ctx context.Context) (string, error)
	// DiscardLine drops whatever remains of the line the last token came from.
	DiscardLine() error
	Print(text string) error
}
