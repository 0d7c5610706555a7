package host

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.design/x/clipboard"
)

const (
	screenWidth  = 160
	screenHeight = 144
)

// frameToImage converts a raw RGB8 frame into an *image.RGBA the
// standard library's png encoder can take.
func frameToImage(frame [screenHeight][screenWidth][3]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			px := frame[y][x]
			img.Set(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 255})
		}
	}
	return img
}

// CopyFrameToClipboard PNG-encodes a frame and places it on the system
// clipboard, for a "copy screenshot" hotkey in a host frontend.
func CopyFrameToClipboard(frame [screenHeight][screenWidth][3]uint8) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("host: clipboard init: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, frameToImage(frame)); err != nil {
		return fmt.Errorf("host: encode screenshot: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
