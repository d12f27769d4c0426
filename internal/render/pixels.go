package render

import "image/color"

// fillBinaryRGBA writes one premultiplied RGBA pixel per cell into buf: on
// for occupied cells, off for empty ones.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := pixel(on), pixel(off)
	for i, c := range cells {
		px := &offPx
		if c != 0 {
			px = &onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func pixel(c color.Color) [4]byte {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return [4]byte{rgba.R, rgba.G, rgba.B, rgba.A}
}
