package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	landing "github.com/floridaliza5000-byte/No-code-Landing-Page"
)

// Sentinel errors for export operations.
var (
	ErrNoInput      = errors.New("usage: landing-export [flags] <document.yaml>")
	ErrWriteArchive = errors.New("failed to write archive file")
)

// filePermissions for the output archive: owner read+write, others read.
const filePermissions = 0o644

// run loads the document, exports it, and writes the archive.
func run(flags *exportFlags, args []string) error {
	if len(args) < 1 {
		return ErrNoInput
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	var svcOpts []landing.Option
	if flags.workers > 0 {
		svcOpts = append(svcOpts, landing.WithWorkers(flags.workers))
	}
	svc := landing.New(svcOpts...)

	opts := &landing.ExportOptions{
		OptimizeImages: flags.optimize,
		MaxWidth:       flags.maxWidth,
		Quality:        flags.quality,
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Exporting %q (%d blocks)...\n", doc.Title, len(doc.Blocks))
	}

	bundle, err := svc.Export(context.Background(), doc, opts)
	if err != nil {
		return err
	}

	for _, w := range bundle.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	outPath := flags.output
	if outPath == "" {
		outPath = landing.ArchiveName(doc.Title) + ".zip"
	}

	var buf bytes.Buffer
	if err := bundle.WriteArchive(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteArchive, err)
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d assets)\n", outPath, len(bundle.Assets))
	}
	fmt.Printf("Created %s\n", outPath)
	return nil
}
