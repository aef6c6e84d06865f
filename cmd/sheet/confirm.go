package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// promptConfirmer asks on out and reads the answer from in. Anything other
// than an explicit yes declines, including end of input.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeCanceled, "confirmation canceled")
	}

	fmt.Fprintf(p.out, "%s [s/N] ", prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// autoConfirmer approves every prompt; used with --yes
type autoConfirmer struct{}

func (autoConfirmer) Confirm(context.Context, string) (bool, error) {
	return true, nil
}
