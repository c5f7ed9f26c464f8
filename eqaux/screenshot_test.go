package eqaux

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodePPM(t *testing.T) {
	img := testImage(3, 2)
	var buf bytes.Buffer
	err := EncodeImage(&buf, img, FormatPPM)
	if err != nil {
		t.Fatal(err)
	}
	header := "P6 3 2 255\n"
	got := buf.Bytes()
	if !bytes.HasPrefix(got, []byte(header)) {
		t.Fatalf("bad header %q", got[:min(len(got), len(header))])
	}
	pix := got[len(header):]
	if len(pix) != 3*3*2 {
		t.Fatalf("got %d pixel bytes", len(pix))
	}
	// First row is the top of the image.
	want := img.NRGBAAt(2, 0)
	if pix[6] != want.R || pix[7] != want.G || pix[8] != want.B {
		t.Errorf("pixel (2,0) = %v, want %v", pix[6:9], want)
	}
}

func TestEncodeDecodable(t *testing.T) {
	img := testImage(4, 3)
	decoders := map[ImageFormat]func(*bytes.Reader) (image.Image, error){
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}
	for format, decode := range decoders {
		var buf bytes.Buffer
		err := EncodeImage(&buf, img, format)
		if err != nil {
			t.Fatal(format, err)
		}
		got, err := decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(format, err)
		}
		if got.Bounds() != img.Bounds() {
			t.Errorf("%s: bounds %v, want %v", format, got.Bounds(), img.Bounds())
		}
		r, g, b, _ := got.At(1, 2).RGBA()
		want := img.NRGBAAt(1, 2)
		if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
			t.Errorf("%s: pixel mismatch", format)
		}
	}
	var buf bytes.Buffer
	err := EncodeImage(&buf, img, FormatWebP)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Error("webp output missing RIFF header")
	}
}

func TestWriteImageFile(t *testing.T) {
	dir := t.TempDir()
	img := testImage(2, 2)
	for _, ext := range []string{"ppm", "png", "webp", "bmp", "tif", "tiff"} {
		path := filepath.Join(dir, fmt.Sprintf("out.%s", ext))
		err := WriteImageFile(path, img)
		if err != nil {
			t.Fatal(ext, err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s: empty output", ext)
		}
	}
	err := WriteImageFile(filepath.Join(dir, "out.gif"), img)
	if err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestDownscale(t *testing.T) {
	img := testImage(100, 50)
	if got := Downscale(img, 0); got != image.Image(img) {
		t.Error("non positive size should not scale")
	}
	if got := Downscale(img, 100); got != image.Image(img) {
		t.Error("fitting image should not scale")
	}
	got := Downscale(img, 40)
	if sz := got.Bounds().Size(); sz != image.Pt(40, 20) {
		t.Errorf("got size %v", sz)
	}
	tall := Downscale(testImage(10, 30), 15)
	if sz := tall.Bounds().Size(); sz != image.Pt(5, 15) {
		t.Errorf("got size %v", sz)
	}
}
