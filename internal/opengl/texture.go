package opengl

import (
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// UploadTexture uploads an RGBA image to the GPU and returns its texture id.
// Call this from the main goroutine (OpenGL context must be current).
// Sampling is trilinear with clamp-to-edge, which suits every raster the
// installation uploads: petal sprite, bark tile, photos and placeholders.
func UploadTexture(img *image.RGBA) uint32 {
	if img == nil {
		return 0
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w == 0 || h == 0 {
		return 0
	}

	pixels := img.Pix
	if img.Stride != w*4 {
		// Sub-images carry padded rows; repack tightly before upload.
		pixels = make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			copy(pixels[y*w*4:(y+1)*w*4], img.Pix[y*img.Stride:y*img.Stride+w*4])
		}
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// DeleteTexture frees a previously uploaded GPU texture.
func DeleteTexture(id uint32) {
	if id == 0 {
		return
	}
	gl.DeleteTextures(1, &id)
}
