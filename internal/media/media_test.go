package media_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/media"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 40, G: 120, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare_DownscalesWideImages(t *testing.T) {
	file, err := media.Prepare("hero.png", encodePNG(t, 400, 200), 100)
	require.NoError(t, err)

	assert.True(t, file.Resized)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, "png", file.Extension)

	img, _, err := image.Decode(bytes.NewReader(file.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestPrepare_KeepsNarrowImages(t *testing.T) {
	data := encodePNG(t, 80, 80)
	file, err := media.Prepare("icon.png", data, 100)
	require.NoError(t, err)

	assert.False(t, file.Resized)
	assert.Equal(t, data, file.Data)
}

func TestPrepare_ZeroWidthDisablesResize(t *testing.T) {
	file, err := media.Prepare("hero.png", encodePNG(t, 400, 200), 0)
	require.NoError(t, err)
	assert.False(t, file.Resized)
}

func TestPrepare_RejectsNonMedia(t *testing.T) {
	_, err := media.Prepare("notes.txt", []byte("just some text"), 100)
	assert.ErrorIs(t, err, media.ErrUnsupported)

	_, err = media.Prepare("empty.png", nil, 100)
	assert.ErrorIs(t, err, media.ErrEmptyFile)
}

func TestPrepare_RejectsCorruptImage(t *testing.T) {
	data := append([]byte("\x89PNG\r\n\x1a\n"), []byte("not really a png")...)

	_, err := media.Prepare("broken.png", data, 100)
	assert.ErrorIs(t, err, media.ErrUnsupported)
}
