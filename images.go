package landing

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"regexp"
	"sync"

	"golang.org/x/image/draw"

	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Asset is one externalized file in the exported bundle.
type Asset struct {
	Path string
	Data []byte
}

// assetsDir is the bundle directory holding extracted images.
const assetsDir = "assets"

// dataURIPattern recognizes inline embedded images. Strings that start
// with data:image/ but fail the full pattern are ordinary strings and
// pass through the asset pass untouched.
var dataURIPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9+.-]+);base64,(.+)$`)

// embeddedImage is a parsed inline image reference.
type embeddedImage struct {
	ext  string // extension derived from the MIME subtype
	data []byte // decoded binary content
}

// parseEmbeddedImage parses a data-URI string. ok is false when the
// string does not match the embedded-image shape or the payload is not
// valid base64; such strings are left alone by the asset pass.
func parseEmbeddedImage(s string) (embeddedImage, bool) {
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return embeddedImage{}, false
	}
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return embeddedImage{}, false
	}
	ext := mimeSubtype(m[1])
	return embeddedImage{ext: ext, data: raw}, true
}

// mimeSubtype extracts the subtype of an image MIME type, falling back
// to png for the degenerate "image/" case.
func mimeSubtype(mime string) string {
	const prefix = "image/"
	if len(mime) <= len(prefix) {
		return "png"
	}
	return mime[len(prefix):]
}

// encoderAttempt is one entry in the re-encode fallback chain.
type encoderAttempt struct {
	ext    string
	encode func(w io.Writer, img image.Image) error
}

// reencodeAttempts returns the ordered encoder chain for optimized
// images. JPEG is the compact preferred format (the Go runtime ships no
// WebP encoder); PNG is the lossless fallback. Exhaustion of the chain
// degrades to the original bytes, never to an error.
func reencodeAttempts(quality float64) []encoderAttempt {
	q := int(math.Round(quality * 100))
	return []encoderAttempt{
		{ext: "jpg", encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
		}},
		{ext: "png", encode: func(w io.Writer, img image.Image) error {
			return png.Encode(w, img)
		}},
	}
}

// optimizeImage decodes an embedded image, downscales it so its width
// does not exceed maxWidth (aspect ratio preserved), and re-encodes it
// through the fallback chain. Every failure degrades to the original
// image: decode and encode errors must never abort an export.
func optimizeImage(src embeddedImage, maxWidth int, quality float64) embeddedImage {
	img, _, err := image.Decode(bytes.NewReader(src.data))
	if err != nil {
		return src
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := max(1, int(math.Round(float64(h)*float64(maxWidth)/float64(w))))
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	for _, attempt := range reencodeAttempts(quality) {
		var buf bytes.Buffer
		if err := attempt.encode(&buf, img); err == nil {
			return embeddedImage{ext: attempt.ext, data: buf.Bytes()}
		}
	}
	return src
}

// assetExtractor defines the contract for the asset pass: replace every
// inline image in the block list with a relative bundle path and return
// the corresponding files.
type assetExtractor interface {
	ExtractAssets(ctx context.Context, blocks []BlockInstance, opts ExportOptions) ([]BlockInstance, []Asset, error)
}

// imageExtraction implements assetExtractor with bounded concurrency
// for the per-image decode/re-encode work.
type imageExtraction struct {
	workers int
}

// ExtractAssets deep-copies the block list and swaps each embedded
// image for an assets/image-<n>.<ext> path. Numbers are allocated in
// document order starting at 1 and are scoped to this one call, so the
// output is order-stable for a given input. Image processing for
// independent assets runs concurrently; naming stays sequential.
func (e *imageExtraction) ExtractAssets(ctx context.Context, blocks []BlockInstance, opts ExportOptions) ([]BlockInstance, []Asset, error) {
	// First walk: collect parsed embedded images in traversal order.
	var found []embeddedImage
	for _, b := range blocks {
		rewriteBlockData(b.Data, func(s string) string {
			if img, ok := parseEmbeddedImage(s); ok {
				found = append(found, img)
			}
			return s
		})
	}

	if len(found) == 0 {
		// Still clone so the caller's document is never aliased.
		out := make([]BlockInstance, len(blocks))
		for i, b := range blocks {
			out[i] = BlockInstance{ID: b.ID, Kind: b.Kind, Data: rewriteBlockData(b.Data, func(s string) string { return s })}
		}
		return out, nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Process images concurrently, results indexed by discovery order.
	processed := make([]embeddedImage, len(found))
	if opts.OptimizeImages {
		var wg sync.WaitGroup
		jobs := make(chan int)
		workers := min(e.workers, len(found))
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					processed[i] = optimizeImage(found[i], opts.MaxWidth, opts.Quality)
				}
			}()
		}
		for i := range found {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		copy(processed, found)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	// Assign sequential collision-free names in discovery order.
	assets := make([]Asset, len(processed))
	for i, img := range processed {
		assets[i] = Asset{
			Path: fmt.Sprintf("%s/image-%d.%s", assetsDir, i+1, img.ext),
			Data: img.data,
		}
	}

	// Second walk: identical traversal, replace each qualifying string
	// with the path assigned to its discovery index.
	next := 0
	out := make([]BlockInstance, len(blocks))
	for i, b := range blocks {
		data := rewriteBlockData(b.Data, func(s string) string {
			if _, ok := parseEmbeddedImage(s); ok {
				path := assets[next].Path
				next++
				return path
			}
			return s
		})
		out[i] = BlockInstance{ID: b.ID, Kind: b.Kind, Data: data}
	}

	return out, assets, nil
}
