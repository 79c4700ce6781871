// Package console is the line-oriented terminal the game talks to: blocking
// single-line reads, plain writes and a screen clear.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ClearSequence erases the screen and homes the cursor
const ClearSequence = "\x1b[2J\x1b[1;1H"

// ErrInvalidNumber is returned when a numeric answer cannot be parsed
var ErrInvalidNumber = errors.New("invalid number")

// Console reads answers from in and writes the game screen to out
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool

	start sync.Once
	lines chan string
	err   error // set before lines is closed
}

// Option configures a Console
type Option func(*Console)

// WithoutClear turns Clear into a no-op, useful when output is piped or logged
func WithoutClear() Option {
	return func(c *Console) {
		c.clear = false
	}
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		clear: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. A final line with no newline is still returned; after that
// ReadLine returns io.EOF.
func (c *Console) ReadLine() (string, error) {
	return c.ReadLineContext(context.Background())
}

// ReadLineContext is ReadLine that gives up when ctx is done. A line that
// arrives after cancellation is kept for the next read.
func (c *Console) ReadLineContext(ctx context.Context) (string, error) {
	c.start.Do(func() {
		c.lines = make(chan string)
		go c.readLoop()
	})

	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", c.err
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// readLoop owns the input stream so a blocked read never outlives the caller
func (c *Console) readLoop() {
	defer close(c.lines)
	for {
		line, err := c.in.ReadString('\n')
		if err == nil || (errors.Is(err, io.EOF) && line != "") {
			c.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			c.err = err
			return
		}
	}
}

// Write implements io.Writer so renderers can draw straight to the console
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Println writes a line of text
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Clear erases the screen
func (c *Console) Clear() {
	if !c.clear {
		return
	}
	_, _ = io.WriteString(c.out, ClearSequence)
}

// Ask writes prompt on its own line and returns the next line of input
func (c *Console) Ask(prompt string) (string, error) {
	c.Println(prompt)
	return c.ReadLine()
}

// AskCount asks for an unsigned whole number
func (c *Console) AskCount(prompt string) (int, error) {
	answer, err := c.Ask(prompt)
	if err != nil {
		return 0, err
	}
	return ParseCount(answer)
}

// ParseCount parses an unsigned decimal number, ignoring surrounding space
func ParseCount(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, strings.TrimSpace(s))
	}
	return int(n), nil
}
