package betaface

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// fallbackContentType is used when the image header is not recognised.
const fallbackContentType = "image/jpeg"

// sniffContentType reads only the image header to pick the multipart content type.
// The reader is rewound before returning.
func sniffContentType(r io.ReadSeeker) (string, error) {
	_, format, err := image.DecodeConfig(r)
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return "", seekErr
	}
	if err != nil || format == "" {
		return fallbackContentType, nil
	}
	return "image/" + format, nil
}
