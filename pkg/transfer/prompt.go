package transfer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputExhausted signals that the interactive input stream closed
// before a valid replacement value was supplied. Non-interactive callers
// hit this instead of looping forever.
var ErrInputExhausted = errors.New("interactive input exhausted")

// Prompter repairs invalid request fields by asking the interactive
// input stream for replacements.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prompts repeatedly until valid accepts the trimmed input.
func (p *Prompter) Ask(prompt string, valid func(string) bool, errMsg string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", ErrInputExhausted
		}
		value := strings.TrimSpace(p.in.Text())
		if valid(value) {
			return value, nil
		}
		fmt.Fprintf(p.out, "Error: %s. Please try again.\n", errMsg)
	}
}

// Repair validates req and asks for replacements of the failing fields.
// On success req has reached its terminal validated state.
func (p *Prompter) Repair(req *Request) error {
	if req.Source == "" || !PathExists(req.Source) {
		if req.Source != "" {
			fmt.Fprintf(p.out, "Error: source path '%s' does not exist.\n", req.Source)
		}
		source, err := p.Ask("Enter a valid local source path: ", PathExists, "path does not exist")
		if err != nil {
			return err
		}
		req.Source = source
	}
	if !ValidIP(req.Host) {
		fmt.Fprintf(p.out, "Error: host IP '%s' is invalid.\n", req.Host)
		host, err := p.Ask("Enter a valid remote host IP address: ", ValidIP, "IP address format is invalid")
		if err != nil {
			return err
		}
		req.Host = host
	}
	return nil
}
