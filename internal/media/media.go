// Package media inspects uploaded files and bounds the size of raster images.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyFile   = errors.New("file is empty")
	ErrUnsupported = errors.New("only image and video files are allowed")
)

type File struct {
	Data        []byte
	ContentType string
	// Extension without the leading dot, e.g. "png".
	Extension string
	Resized   bool
}

// Prepare sniffs the content type of data and downscales JPEG and PNG images
// wider than maxWidth, keeping the aspect ratio. A maxWidth of zero disables
// resizing. filename is only consulted when sniffing yields no extension.
func Prepare(filename string, data []byte, maxWidth int) (*File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	mtype := mimetype.Detect(data)
	contentType := mtype.String()
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupported, contentType)
	}

	ext := strings.TrimPrefix(mtype.Extension(), ".")
	if ext == "" {
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	}

	file := &File{Data: data, ContentType: contentType, Extension: ext}
	if maxWidth <= 0 || !(mtype.Is("image/jpeg") || mtype.Is("image/png")) {
		return file, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrUnsupported, err)
	}
	if img.Bounds().Dx() <= maxWidth {
		return file, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	format := imaging.PNG
	if mtype.Is("image/jpeg") {
		format = imaging.JPEG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	file.Data = buf.Bytes()
	file.Resized = true
	return file, nil
}
