// Package prompt collects profile fields from a human.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrCancelled is returned when input ends before every field is answered.
var ErrCancelled = errors.New("prompt cancelled")

// Profile field names.
const (
	FieldHostname    = "hostname"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldCodeVersion = "codeversion"
	FieldExclude     = "exclude"
)

// Field describes one value to ask for.
type Field struct {
	Name        string
	Description string
	Required    bool
	Hidden      bool // input is not echoed
	Default     string
}

// Prompter asks for fields and returns answers keyed by Field.Name.
type Prompter interface {
	Prompt(ctx context.Context, fields []Field) (map[string]string, error)
}

// ProfileFields returns the fields asked by create, insert and edit.
func ProfileFields(codeVersion string, exclude []string) []Field {
	return []Field{
		{
			Name:        FieldHostname,
			Description: "Hostname of your Sandbox (without https:// prefix)",
			Required:    true,
		},
		{
			Name:        FieldUsername,
			Description: "Username of your Sandbox",
			Required:    true,
		},
		{
			Name:        FieldPassword,
			Description: "Password of your Sandbox (the input won't be visible)",
			Required:    true,
			Hidden:      true,
		},
		{
			Name:        FieldCodeVersion,
			Description: fmt.Sprintf("Code Version (default is %s)", codeVersion),
			Default:     codeVersion,
		},
		{
			Name:        FieldExclude,
			Description: "Exclude uploading folders and files. Separate all excludes by space",
			Default:     strings.Join(exclude, " "),
		},
	}
}

// Terminal reads answers line by line. Hidden fields are read without echo
// when the input is a terminal.
type Terminal struct {
	reader *bufio.Reader
	fd     int
	isTTY  bool
	out    io.Writer
}

// NewTerminal creates a prompter reading from in and writing questions to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		reader: bufio.NewReader(in),
		fd:     -1,
		out:    out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.isTTY = true
	}
	return t
}

// Prompt asks every field in order. Empty answers take the default; required
// fields without a default are asked again.
func (t *Terminal) Prompt(ctx context.Context, fields []Field) (map[string]string, error) {
	answers := make(map[string]string, len(fields))
	for _, field := range fields {
		value, err := t.ask(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.Name, err)
		}
		answers[field.Name] = value
	}
	return answers, nil
}

func (t *Terminal) ask(ctx context.Context, field Field) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if field.Default != "" {
			fmt.Fprintf(t.out, "%s [%s]: ", field.Description, field.Default)
		} else {
			fmt.Fprintf(t.out, "%s: ", field.Description)
		}

		value, eof, err := t.readValue(field.Hidden)
		if err != nil {
			return "", err
		}
		if value == "" {
			value = field.Default
		}
		if value != "" {
			return value, nil
		}
		if eof {
			return "", ErrCancelled
		}
		if !field.Required {
			return "", nil
		}
		fmt.Fprintf(t.out, "%s is required\n", field.Name)
	}
}

// readValue reads one answer. Hidden answers are kept verbatim apart from the
// line terminator. On a terminal they are read without echo, unless the answer
// is already sitting in the line buffer (pasted input), which is consumed first
// so answers stay in order.
func (t *Terminal) readValue(hidden bool) (string, bool, error) {
	if hidden && t.isTTY && t.reader.Buffered() == 0 {
		data, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), false, nil
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	eof := errors.Is(err, io.EOF)
	if hidden {
		return strings.TrimRight(line, "\r\n"), eof, nil
	}
	return strings.TrimSpace(line), eof, nil
}
