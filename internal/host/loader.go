// Package host provides the external collaborators this emulator core
// needs but does not itself implement: locating and decompressing a ROM
// file, prompting the user for one, and handing finished frames to a
// screenshot or remote-display sink. None of it is reachable from the
// CPU/Interconnect/PPU/APU core - it exists so a thin cmd/ binary has
// somewhere to get a ROM from and somewhere to put a frame.
package host

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadROM reads filename and, if it looks compressed, decompresses the
// first archive member. Plain .gb/.gbc images and boot ROM images pass
// through unchanged.
func LoadROM(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("host: open rom: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("host: read rom: %w", err)
	}

	switch filepath.Ext(filename) {
	case ".gb", ".gbc", ".bin":
		return data, nil
	case ".gz":
		f.Seek(0, io.SeekStart)
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("host: gzip rom: %w", err)
		}
		defer gz.Close()
		return io.ReadAll(gz)
	case ".zip":
		zr, err := zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("host: zip rom: %w", err)
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("host: zip archive %q is empty", filename)
		}
		rc, err := zr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("host: open zip member: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	case ".7z":
		zr, err := sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("host: 7z rom: %w", err)
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("host: 7z archive %q is empty", filename)
		}
		rc, err := zr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("host: open 7z member: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	default:
		return data, nil
	}
}
