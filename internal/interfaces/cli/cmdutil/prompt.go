package cmdutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks for missing flag values on the command's streams.
type Prompter struct {
	out io.Writer
	in  io.Reader
	r   *bufio.Reader
}

func NewPrompter(out io.Writer, in io.Reader) *Prompter {
	return &Prompter{out: out, in: in, r: bufio.NewReader(in)}
}

// Line reads one line without its newline.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Secret reads without echo when the input is a terminal.
func (p *Prompter) Secret(prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.Line(prompt)
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ValueOr returns v when set and prompts otherwise.
func (p *Prompter) ValueOr(v, prompt string) (string, error) {
	if v != "" {
		return v, nil
	}
	return p.Line(prompt)
}
