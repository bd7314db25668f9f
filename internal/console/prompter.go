// Package console reads operator input from an interactive terminal. Every read
// re-prompts until the answer is valid; the only error a read returns is
// ErrInputClosed, when the input stream ends.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// ProductLookup reports whether a product id exists.
type ProductLookup interface {
	Has(id int) bool
}

// Prompter writes prompts to out and reads answers line by line from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

// NewPrompter creates a prompter reading answers from in. Lines of any length are read
// in full.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts and messages go to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// ReadLine prints prompt and returns the next line of free text.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if p.closed {
		return "", ErrInputClosed
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.closed = true
		if line == "" {
			if errors.Is(err, io.EOF) {
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WaitForEnter blocks until the operator presses Enter.
func (p *Prompter) WaitForEnter(prompt string) error {
	_, err := p.ReadLine(prompt)
	return err
}

// ReadPositiveInteger loops until the answer is an integer greater than zero.
func (p *Prompter) ReadPositiveInteger(prompt string) (int, error) {
	for {
		answer, err := p.ReadLine(prompt + " ")
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(strings.TrimSpace(answer))
		switch {
		case err != nil:
			fmt.Fprintln(p.out, "Input Error: Invalid input. Please enter a Natural number.")
		case value <= 0:
			fmt.Fprintln(p.out, "Input Error: Please enter a Natural Number (1 or greater).")
		default:
			return value, nil
		}
	}
}

// ReadValidProductID loops until the answer is the id of a product in products.
func (p *Prompter) ReadValidProductID(prompt string, products ProductLookup) (int, error) {
	for {
		id, err := p.ReadPositiveInteger(prompt)
		if err != nil {
			return 0, err
		}
		if products.Has(id) {
			return id, nil
		}
		fmt.Fprintln(p.out, "Error: Product ID not found in inventory. Please try again.")
	}
}

// ReadYesNo loops until the answer is y/yes or n/no, in any case.
func (p *Prompter) ReadYesNo(prompt string) (bool, error) {
	for {
		answer, err := p.ReadLine(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter 'y' for yes or 'n' for no.")
	}
}
