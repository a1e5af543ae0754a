package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// All renders every leaf into outDir using a worker pool bounded
// by parallelism. Output files keep their leaf names. A file
// whose rendered content digest matches what is already on disk
// is left untouched, so downstream change detection only fires on
// real differences.
func (re *Renderer) All(
	ctx context.Context,
	leaves []string,
	outDir string,
	parallelism int,
) error {
	const errCtx = "rendering documents"

	if err := os.MkdirAll(outDir, 0o755); err != nil { //nolint:gosec // output dir is caller-provided
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if parallelism <= 0 {
		parallelism = 1
	}

	slog.Info(
		"rendering",
		"count", len(leaves),
		"parallelism", parallelism,
	)

	// Worker pool with bounded concurrency.
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	sem := make(chan struct{}, parallelism)

	for _, leaf := range leaves {
		// Check for context cancellation.
		if ctx.Err() != nil {
			mu.Lock()
			errs = append(errs, ctx.Err())
			mu.Unlock()

			break
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(lf string) {
			defer wg.Done()
			defer func() { <-sem }()

			if renderErr := re.renderOne(
				lf, outDir,
			); renderErr != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf(
					"render %s: %w", lf, renderErr,
				))
				mu.Unlock()
			}
		}(leaf)
	}

	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf(
			"%s: %d errors, first: %w",
			errCtx, len(errs), errs[0],
		)
	}

	return nil
}

// renderOne renders a single leaf and writes it to outDir unless
// the existing output already has the same content digest.
func (re *Renderer) renderOne(
	leaf string,
	outDir string,
) error {
	doc, err := re.Document(leaf)
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, filepath.Base(leaf))

	current, err := fileDigest(outPath)
	if err != nil {
		return err
	}

	if current == contentDigest([]byte(doc)) {
		slog.Info("unchanged, skipping", "path", outPath)

		return nil
	}

	//nolint:gosec // rendered documents are world-readable
	if err := os.WriteFile(
		outPath, []byte(doc), 0o644,
	); err != nil {
		return fmt.Errorf(
			"writing %s: %w", outPath, err,
		)
	}

	return nil
}

// contentDigest computes the SHA256 hex digest of data.
func contentDigest(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// fileDigest computes the SHA256 hex digest of the file at path.
// Returns empty string with no error if the file does not exist.
func fileDigest(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // output path is derived from caller input
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf(
			"reading %s: %w", path, err,
		)
	}

	return contentDigest(data), nil
}
