package betaface

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestUploadFilename(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/photos/portrait.jpg", "portrait.jpg"},
		{`C:\Users\me\Downloads\test copy.png`, "test copy.png"},
		{"/photos/Jiří Novák.jpg", "Jiri Novak.jpg"},
		{"/photos/东京.jpg", "__.jpg"},
		{`/photos/say "cheese".jpg`, "say _cheese_.jpg"},
		{"", "image"},
	}

	for _, tt := range tests {
		if got := uploadFilename(tt.path); got != tt.expected {
			t.Errorf("uploadFilename(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestSniffContentType(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, nil); err != nil {
		t.Fatalf("jpeg encode failed: %v", err)
	}

	var gf bytes.Buffer
	if err := gif.Encode(&gf, img, nil); err != nil {
		t.Fatalf("gif encode failed: %v", err)
	}

	var bm bytes.Buffer
	if err := bmp.Encode(&bm, img); err != nil {
		t.Fatalf("bmp encode failed: %v", err)
	}

	var tf bytes.Buffer
	if err := tiff.Encode(&tf, img, nil); err != nil {
		t.Fatalf("tiff encode failed: %v", err)
	}

	// x/image has no webp encoder, so webp is only covered by registration.
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"jpeg", jpg.Bytes(), "image/jpeg"},
		{"gif", gf.Bytes(), "image/gif"},
		{"bmp", bm.Bytes(), "image/bmp"},
		{"tiff", tf.Bytes(), "image/tiff"},
		{"bmp header", append([]byte("BM"), make([]byte, 60)...), "image/jpeg"},
		{"unknown", []byte("definitely not an image"), "image/jpeg"},
		{"empty", nil, "image/jpeg"},
	}

	for _, tt := range tests {
		r := bytes.NewReader(tt.data)
		got, err := sniffContentType(r)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("%s: expected '%s', got '%s'", tt.name, tt.expected, got)
		}
		if pos, _ := r.Seek(0, 1); pos != 0 {
			t.Errorf("%s: expected reader rewound, at %d", tt.name, pos)
		}
	}
}
