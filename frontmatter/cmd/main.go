// Package main provides the canonicalize CLI: it reads a fenced
// document, parses its front-matter, and re-emits the document
// with the block in canonical form.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/frontmatter_templates/frontmatter"
)

func run() error {
	const errCtx = "canonicalize"

	var (
		inFile  string
		outFile string
	)

	flag.StringVar(
		&inFile, "infile", "",
		"input document path (empty reads stdin)",
	)

	flag.StringVar(
		&outFile, "outfile", "",
		"output document path (empty writes stdout)",
	)

	flag.Parse()

	data, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	block, body, err := frontmatter.Split(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	meta, err := frontmatter.Parse(block)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	doc, err := frontmatter.Join(meta, body)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if outFile == "" {
		fmt.Print(doc)

		return nil
	}

	//nolint:gosec // path from CLI flag
	if err := os.WriteFile(
		outFile, []byte(doc), 0o644,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// readInput reads the document from a file path, or stdin when
// the path is empty.
func readInput(inFile string) ([]byte, error) {
	if inFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf(
				"reading stdin: %w", err,
			)
		}

		return data, nil
	}

	data, err := os.ReadFile(inFile) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf(
			"reading input: %w", err,
		)
	}

	return data, nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
