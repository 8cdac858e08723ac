package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// User answers. Only the exact Yes token is affirmative: "Y" or "yes" are
// refusals.
const (
	Yes = "y"
	No  = "n"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Prompter reads answers line by line from an input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter writing questions to out and reading answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Reader returns the buffered input answers are read from. Anything reading
// the same stream after a prompt, such as the shell, must use it: the buffer
// may already hold input typed past the answer.
func (p *Prompter) Reader() io.Reader {
	return p.in
}

type answer struct {
	line string
	err  error
}

// Confirm writes question followed by the accepted answers and reports whether
// the reply is exactly Yes. A closed input counts as a refusal.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (%s/%s): ", question, Yes, No)

	ch := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The read goroutine stays blocked on the input; the Prompter must not be used again.
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, Wrap(a.err, "Could not read your answer.")
		}
		return strings.TrimRight(a.line, "\r\n") == Yes, nil
	}
}

// Require asks question and turns anything but Yes into an InstallationError
// carrying refusal.
func Require(ctx context.Context, c Confirmer, question, refusal string) error {
	ok, err := c.Confirm(ctx, question)
	if err != nil {
		return err
	}
	if !ok {
		return Errorf("%s", refusal)
	}
	return nil
}
