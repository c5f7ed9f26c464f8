package glrender

import (
	"fmt"
	"image"
)

// FramebufferImage converts tightly packed RGBA pixels read from GL, whose first row is the
// bottom of the window, into an image whose first row is the top. Alpha is forced opaque.
func FramebufferImage(pix []byte, width, height int) (*image.NRGBA, error) {
	stride := 4 * width
	if width <= 0 || height <= 0 || len(pix) < stride*height {
		return nil, fmt.Errorf("framebuffer of %d bytes too small for %dx%d image", len(pix), width, height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		dst := img.Pix[y*img.Stride : y*img.Stride+stride]
		copy(dst, src)
		for i := 3; i < stride; i += 4 {
			dst[i] = 255
		}
	}
	return img, nil
}
