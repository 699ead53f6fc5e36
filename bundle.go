package landing

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Bundle is the terminal export artifact: one HTML document, the fixed
// stylesheet, the extracted asset files in allocation order, and a
// readme. Immutable once produced.
type Bundle struct {
	HTML     string
	CSS      string
	Readme   string
	Assets   []Asset
	Warnings []string
}

// Fixed paths inside the archive.
const (
	archiveIndexPath  = "index.html"
	archiveStylePath  = "styles.css"
	archiveReadmePath = "README.txt"
)

// DefaultArchiveName is used when a document title sanitizes to nothing.
const DefaultArchiveName = "landing"

var (
	archiveNameStrip    = regexp.MustCompile(`[^a-zA-Z0-9\-_\s]+`)
	archiveNameCollapse = regexp.MustCompile(`\s+`)
)

// ArchiveName derives the archive base name (without extension) from a
// document title: characters outside letters/digits/hyphen/underscore/
// space are removed, whitespace is trimmed and collapsed to hyphens,
// and the result is lower-cased. An empty result falls back to
// DefaultArchiveName.
func ArchiveName(title string) string {
	name := archiveNameStrip.ReplaceAllString(title, "")
	name = strings.TrimSpace(name)
	name = archiveNameCollapse.ReplaceAllString(name, "-")
	name = strings.ToLower(name)
	if name == "" {
		return DefaultArchiveName
	}
	return name
}

// WriteArchive assembles the bundle into a zip archive on w. Entries
// carry no timestamps, so the same bundle always produces the same
// bytes. Packaging is the one fatal stage of an export: any write error
// fails the whole call and nothing partial should be used.
func (b *Bundle) WriteArchive(w io.Writer) error {
	zw := zip.NewWriter(w)

	files := []struct {
		name string
		data []byte
	}{
		{archiveIndexPath, []byte(b.HTML)},
		{archiveStylePath, []byte(b.CSS)},
		{archiveReadmePath, []byte(b.Readme)},
	}
	for _, a := range b.Assets {
		files = append(files, struct {
			name string
			data []byte
		}{a.Path, a.Data})
	}

	// The assets directory is present even when no images were uploaded.
	if _, err := zw.CreateHeader(&zip.FileHeader{Name: assetsDir + "/"}); err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}

	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   f.name,
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("%w: creating %s: %v", ErrArchiveWrite, f.name, err)
		}
		if _, err := fw.Write(f.data); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrArchiveWrite, f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	return nil
}
