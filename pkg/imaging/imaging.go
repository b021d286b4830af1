package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 90

// Decode декодирует изображение из байтов. Поддерживаются JPEG, PNG,
// GIF и WebP. Формат определяется по содержимому, не по имени файла.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), e.ErrUnsupportedImage)
	}

	return img, format, nil
}

// Crop вырезает прямоугольник [x1, x2] x [y1, y2] из изображения.
// Границы считаются уже зажатыми в пределы изображения.
func Crop(img image.Image, x1, y1, x2, y2 int) image.Image {
	rect := image.Rect(x1, y1, x2+1, y2+1)

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if sub, ok := img.(subImager); ok {
		return sub.SubImage(rect.Intersect(img.Bounds()))
	}

	// Формат без SubImage, копируем пиксели вручную.
	rect = rect.Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			out.Set(x-rect.Min.X, y-rect.Min.Y, img.At(x, y))
		}
	}

	return out
}

// EncodeJPEG кодирует изображение в JPEG для передачи в ML-сервис.
func EncodeJPEG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return buf.Bytes(), nil
}

// EncodePNG кодирует изображение в PNG без потерь.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return buf.Bytes(), nil
}
