package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrNotImage reports data whose MIME type is not image/*.
var ErrNotImage = errors.New("not an image")

const tgaMIMEType = "image/x-tga"

func init() {
	// Not in every system mime table.
	_ = mime.AddExtensionType(".tga", tgaMIMEType)
	_ = mime.AddExtensionType(".webp", "image/webp")
}

// MIMEType guesses the type of data from its name, falling back to content
// sniffing.
func MIMEType(name string, data []byte) string {
	if ext := strings.ToLower(path.Ext(name)); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return http.DetectContentType(data)
}

// Decode checks that data is an image, decodes it and fits it to size.
func Decode(name string, data []byte, size image.Point) (*image.RGBA, error) {
	t := MIMEType(name, data)
	if !strings.HasPrefix(t, "image/") {
		return nil, fmt.Errorf("texture: %s (%s): %w", name, t, ErrNotImage)
	}

	img, err := decodeImage(t, data)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", name, err)
	}
	return Fit(img, size), nil
}

// Formats are decoded through this table instead of image.Decode: tga
// registers with an empty magic string and would claim every input.
var decoders = map[string]func(io.Reader) (image.Image, error){
	"image/png":      png.Decode,
	"image/jpeg":     jpeg.Decode,
	"image/gif":      gif.Decode,
	"image/bmp":      bmp.Decode,
	"image/x-ms-bmp": bmp.Decode,
	"image/tiff":     tiff.Decode,
	"image/webp":     webp.Decode,
	tgaMIMEType:      tga.Decode,
}

// ErrUnsupported reports an image type with no decoder.
var ErrUnsupported = errors.New("unsupported image format")

// decodeImage picks the decoder from the content first, so a misnamed file
// still decodes, then from the name's MIME type.
func decodeImage(mimeType string, data []byte) (image.Image, error) {
	dec, ok := decoders[http.DetectContentType(data)]
	if !ok {
		dec, ok = decoders[mimeType]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
	return dec(bytes.NewReader(data))
}

// Fit resamples src to exactly size.
func Fit(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
