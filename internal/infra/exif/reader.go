package exif

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

// ErrNoMetadata is returned for files without a usable EXIF block, which is
// the normal case for PNG and ICO assets.
var ErrNoMetadata = errors.New("no exif metadata")

type Reader struct{}

// Inspect returns the capture time and camera of an image, falling back from
// DateTimeOriginal to DateTime.
func (Reader) Inspect(ctx context.Context, path string) (time.Time, string, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, "", ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, "", err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, "", ErrNoMetadata
	}

	camera := ""
	if tag, err := x.Get(goexif.Model); err == nil {
		if str, err := tag.StringVal(); err == nil {
			camera = strings.TrimSpace(str)
		}
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			if parsed, err := time.Parse("2006:01:02 15:04:05", str); err == nil {
				return parsed, camera, nil
			}
		}
	}

	if parsed, err := x.DateTime(); err == nil {
		return parsed, camera, nil
	}

	return time.Time{}, camera, ErrNoMetadata
}
