package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document from the file named by its --file flag,
// or from stdin when the flag is unset and stdin is not a terminal.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin overrides os.Stdin. Readers that are not *os.File are always
	// treated as piped input.
	Stdin io.Reader
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

func (fr *FileReader[T]) stdin() io.Reader {
	if fr.Stdin != nil {
		return fr.Stdin
	}
	return os.Stdin
}

// Available reports whether Read has an input to consume.
func (fr *FileReader[T]) Available() bool {
	if fr.fileFlagValue != "" {
		return true
	}
	if f, ok := fr.stdin().(*os.File); ok {
		return !term.IsTerminal(int(f.Fd()))
	}
	return true
}

func (fr *FileReader[T]) Read() (T, error) {
	var reader io.Reader
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if !fr.Available() {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = fr.stdin()
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
