package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	sessionout "stepcount/internal/modules/session/port/out"
)

var ErrConsoleClosed = errors.New("console closed")

// StreamConsole tokenizes an input stream on whitespace while remembering
// which line each token came from, so the rest of a line can be dropped.
type StreamConsole struct {
	in      *bufio.Reader
	out     io.Writer
	pending []string
	closed  bool
}

func NewStreamConsole(in io.Reader, out io.Writer) *StreamConsole {
	return &StreamConsole{in: bufio.NewReader(in), out: out}
}

var _ sessionout.Console = (*StreamConsole)(nil)

func (c *StreamConsole) Next(ctx context.Context) (string, error) {
	if c.closed {
		return "", ErrConsoleClosed
	}
	for len(c.pending) == 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := c.in.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		c.pending = strings.Fields(line)
	}
	token := c.pending[0]
	c.pending = c.pending[1:]
	return token, nil
}

func (c *StreamConsole) DiscardLine() error {
	if c.closed {
		return ErrConsoleClosed
	}
	c.pending = nil
	return nil
}

func (c *StreamConsole) Print(text string) error {
	if c.closed {
		return ErrConsoleClosed
	}
	if _, err := io.WriteString(c.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Close releases the console. Further calls fail with ErrConsoleClosed.
func (c *StreamConsole) Close() error {
	c.closed = true
	c.pending = nil
	return nil
}
