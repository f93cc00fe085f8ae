package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat расширение имени не соответствует ни JPEG, ни PNG
var ErrUnsupportedFormat = errors.New("unsupported image format")

// encodeAs кодирует картинку в формат, который обещает расширение имени:
// файл результата отдаётся с типом по расширению.
func encodeAs(name string, img image.Image, jpegQuality int) ([]byte, error) {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, err
		}
	case ".png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return buf.Bytes(), nil
}
