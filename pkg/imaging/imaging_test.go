package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	return img
}

func TestDecodeJPEGRoundTrip(t *testing.T) {
	data, err := EncodeJPEG(testImage(32, 24))
	require.NoError(t, err)

	img, format, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestDecodePNG(t *testing.T) {
	data, err := EncodePNG(testImage(10, 10))
	require.NoError(t, err)

	_, format, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUnsupportedImage)
}

func TestCrop(t *testing.T) {
	img := testImage(100, 80)

	crop := Crop(img, 10, 20, 49, 59)
	assert.Equal(t, 40, crop.Bounds().Dx())
	assert.Equal(t, 40, crop.Bounds().Dy())
}

func TestCropFullFrame(t *testing.T) {
	img := testImage(64, 48)

	crop := Crop(img, 0, 0, 63, 47)
	assert.Equal(t, img.Bounds().Dx(), crop.Bounds().Dx())
	assert.Equal(t, img.Bounds().Dy(), crop.Bounds().Dy())
}
