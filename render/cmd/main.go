// Package main provides the render CLI: it resolves the template
// chain behind one or more leaf documents, merges front-matter,
// expands body placeholders, and writes the resulting documents.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/frontmatter_templates/chain"
	"github.com/byte4ever/frontmatter_templates/render"
)

func run() error {
	const errCtx = "render"

	var (
		dir         string
		parentKey   string
		outDir      string
		asJSON      bool
		parallelism int
	)

	flag.StringVar(
		&dir, "dir", ".",
		"directory containing template files",
	)

	flag.StringVar(
		&parentKey, "parent-key", chain.DefaultParentKey,
		"front-matter key naming the parent template",
	)

	flag.StringVar(
		&outDir, "out", "",
		"output directory (empty writes a single document to stdout)",
	)

	flag.BoolVar(
		&asJSON, "json", false,
		"emit the resolved document as JSON (stdout mode only)",
	)

	flag.IntVar(
		&parallelism, "parallelism", 4,
		"number of concurrent render workers",
	)

	flag.Parse()

	leaves := flag.Args()
	if len(leaves) == 0 {
		return errors.New(
			"at least one leaf document is required",
		)
	}

	re := &render.Renderer{
		Resolver: &chain.Resolver{
			Dir:       dir,
			ParentKey: parentKey,
		},
	}

	if outDir != "" {
		if err := re.All(
			context.Background(),
			leaves,
			outDir,
			parallelism,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if len(leaves) != 1 {
		return errors.New(
			"stdout mode accepts exactly one leaf document",
		)
	}

	if asJSON {
		out, err := re.JSON(leaves[0])
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		fmt.Println(string(out))

		return nil
	}

	out, err := re.Document(leaves[0])
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fmt.Print(out)

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
