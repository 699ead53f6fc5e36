package landing

// Notes:
// - ArchiveName: tests the exact sanitization transform
// - WriteArchive: tests fixed paths, asset inclusion, and determinism
//   by reading the archive back with archive/zip

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestArchiveName - Title Sanitization
// ---------------------------------------------------------------------------

func TestArchiveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain title",
			input:    "landing",
			expected: "landing",
		},
		{
			name:     "spaces collapse to hyphens",
			input:    "My Product Page",
			expected: "my-product-page",
		},
		{
			name:     "accents and punctuation removed",
			input:    "My Café & Co.",
			expected: "my-caf-co",
		},
		{
			name:     "existing hyphens and underscores kept",
			input:    "my-page_v2",
			expected: "my-page_v2",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  spaced out  ",
			expected: "spaced-out",
		},
		{
			name:     "multiple internal spaces collapse",
			input:    "a   b",
			expected: "a-b",
		},
		{
			name:     "empty title falls back",
			input:    "",
			expected: "landing",
		},
		{
			name:     "only symbols falls back",
			input:    "!!!***",
			expected: "landing",
		},
		{
			name:     "uppercase lowered",
			input:    "LANDING",
			expected: "landing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ArchiveName(tt.input)
			if got != tt.expected {
				t.Errorf("ArchiveName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteArchive - Zip Assembly
// ---------------------------------------------------------------------------

func testBundle() *Bundle {
	return &Bundle{
		HTML:   "<!doctype html><html></html>",
		CSS:    "body{margin:0}",
		Readme: "readme text",
		Assets: []Asset{
			{Path: "assets/image-1.png", Data: []byte{0x89, 'P', 'N', 'G'}},
			{Path: "assets/image-2.jpg", Data: []byte{0xff, 0xd8, 0xff}},
		},
	}
}

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	files := map[string][]byte{}
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			files[f.Name] = nil
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", f.Name, err)
		}
		files[f.Name] = content
	}
	return files
}

func TestWriteArchive(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := testBundle().WriteArchive(&buf); err != nil {
		t.Fatalf("WriteArchive() error: %v", err)
	}

	files := readArchive(t, buf.Bytes())

	if string(files["index.html"]) != "<!doctype html><html></html>" {
		t.Errorf("index.html = %q", files["index.html"])
	}
	if string(files["styles.css"]) != "body{margin:0}" {
		t.Errorf("styles.css = %q", files["styles.css"])
	}
	if string(files["README.txt"]) != "readme text" {
		t.Errorf("README.txt = %q", files["README.txt"])
	}
	if !bytes.Equal(files["assets/image-1.png"], []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("asset 1 content mismatch")
	}
	if !bytes.Equal(files["assets/image-2.jpg"], []byte{0xff, 0xd8, 0xff}) {
		t.Error("asset 2 content mismatch")
	}
}

func TestWriteArchiveEmptyAssetsDir(t *testing.T) {
	t.Parallel()

	bundle := testBundle()
	bundle.Assets = nil

	var buf bytes.Buffer
	if err := bundle.WriteArchive(&buf); err != nil {
		t.Fatalf("WriteArchive() error: %v", err)
	}

	files := readArchive(t, buf.Bytes())
	if _, ok := files["assets/"]; !ok {
		t.Error("assets/ directory entry missing from empty-asset archive")
	}
}

func TestWriteArchiveDeterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	if err := testBundle().WriteArchive(&a); err != nil {
		t.Fatalf("first WriteArchive() error: %v", err)
	}
	if err := testBundle().WriteArchive(&b); err != nil {
		t.Fatalf("second WriteArchive() error: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two archives of the same bundle are not byte-identical")
	}
}

// failWriter fails after n bytes to exercise the fatal packaging path.
type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteArchiveFailureIsFatal(t *testing.T) {
	t.Parallel()

	err := testBundle().WriteArchive(&failWriter{n: 8})
	if err == nil {
		t.Fatal("WriteArchive() on a failing writer returned nil")
	}
}
