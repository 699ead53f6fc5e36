// Package landing exports block-based landing page documents as static,
// self-contained site bundles.
//
// # Quick Start
//
// Create a service, export a document, and write the archive:
//
//	svc := landing.New()
//
//	bundle, err := svc.Export(ctx, doc, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, _ := os.Create(landing.ArchiveName(doc.Title) + ".zip")
//	defer f.Close()
//	if err := bundle.WriteArchive(f); err != nil {
//	    log.Fatal(err)
//	}
//
// The bundle contains the compiled index.html, the fixed styles.css,
// every extracted image under assets/, and a short README. Non-fatal
// problems encountered during export (for example a block of an unknown
// kind) are collected in bundle.Warnings.
//
// # Export Pipeline
//
// One export call runs these stages over an immutable document snapshot:
//
//  1. Asset pass: block data is deep-copied and every inline data-URI
//     image is replaced with a relative assets/ path, optionally
//     re-encoded and downscaled.
//  2. Compilation: each block is rendered to an escaped HTML fragment
//     via the template registry, then wrapped in the document shell with
//     theme CSS variables and SEO metadata.
//  3. Packaging: WriteArchive assembles a deterministic zip.
//
// # Blocks
//
// The block catalog is a closed set: hero, features, gallery,
// testimonials, pricing, and contact. Use NewBlockInstance to obtain a
// block with fresh default data:
//
//	block, err := landing.NewBlockInstance(landing.KindHero)
//
// # Image Optimization
//
// Pass ExportOptions to downscale and re-encode embedded images:
//
//	bundle, err := svc.Export(ctx, doc, &landing.ExportOptions{
//	    OptimizeImages: true,
//	    MaxWidth:       1200,
//	    Quality:        0.8,
//	})
//
// Decoding or re-encoding failures never fail the export; the affected
// image falls back to its original bytes.
package landing
