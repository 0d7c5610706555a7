// Package cartridge models the Game Boy cartridge: an immutable ROM image,
// optional battery-backed RAM, and the memory bank controller (MBC) that
// dispatches ROM/RAM reads and writes according to the cartridge's header
// type byte.
package cartridge

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ErrUnsupportedCartridge is returned when the header's cartridge type byte
// names an MBC this core does not implement, or (with TypeByte 0) when the
// image is too short to hold a header.
type ErrUnsupportedCartridge struct {
	TypeByte uint8
}

func (e *ErrUnsupportedCartridge) Error() string {
	return fmt.Sprintf("cartridge: unsupported cartridge type 0x%02X", e.TypeByte)
}

// Controller is the per-model capability set: ROM/RAM read and write. Each
// MBC variant implements it; Cartridge dispatches through the interface
// rather than a type switch per memory op, since construction already knows
// the concrete model and there's nothing left to gain from re-dispatching
// on every access.
type Controller interface {
	ReadROM(addr uint16) uint8
	WriteROM(addr uint16, value uint8)
	ReadRAM(addr uint16) uint8
	WriteRAM(addr uint16, value uint8)
	// RAM returns the raw battery-backed RAM contents for persistence, or
	// nil if the cartridge has none.
	RAM() []byte
	LoadRAM(data []byte)
}

// Cartridge is the immutable ROM plus its active MBC and optional RAM.
type Cartridge struct {
	Controller
	header Header
	rom    []byte
}

// New parses the header at 0x0100-0x014F and constructs the appropriate
// MBC. rom must be at least 0x150 bytes so the header can be read; a
// shorter image is rejected. The 32 KiB minimum of a real cartridge is not
// checked.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		return nil, &ErrUnsupportedCartridge{}
	}
	header := parseHeader(rom)

	var ctrl Controller
	switch header.Type {
	case TypeROM, TypeROMRAM, TypeROMRAMBattery:
		ctrl = newMBC0(rom, header)
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBattery:
		ctrl = newMBC1(rom, header)
	case TypeMBC2, TypeMBC2Battery:
		ctrl = newMBC2(rom, header)
	case TypeMBC3, TypeMBC3RAM, TypeMBC3RAMBattery, TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery:
		ctrl = newMBC3(rom, header)
	case TypeMBC5, TypeMBC5RAM, TypeMBC5RAMBattery, TypeMBC5Rumble, TypeMBC5RumbleRAM, TypeMBC5RumbleRAMBattery:
		ctrl = newMBC5(rom, header)
	default:
		return nil, &ErrUnsupportedCartridge{TypeByte: uint8(header.Type)}
	}

	return &Cartridge{Controller: ctrl, header: header, rom: rom}, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header { return c.header }

// Title returns the cartridge's game title.
func (c *Cartridge) Title() string { return c.header.Title }

// SaveRAM returns a copy of the cartridge's battery-backed RAM, for a host
// to persist between sessions. Returns nil if the cartridge has no RAM.
func (c *Cartridge) SaveRAM() []byte {
	raw := c.Controller.RAM()
	if raw == nil {
		return nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// LoadRAM restores previously persisted RAM contents.
func (c *Cartridge) LoadRAM(data []byte) {
	c.Controller.LoadRAM(data)
}

// Filename returns a stable save-file name derived from the cartridge
// title, matching the convention used by emulators that key save files off
// the game's title rather than the ROM's file path.
func (c *Cartridge) Filename() string {
	sum := md5.Sum([]byte(c.header.Title))
	return hex.EncodeToString(sum[:])
}

// RAMChecksum returns a cheap content hash of the battery-backed RAM,
// letting a host skip a save-file flush when nothing changed since the
// last one. This is a dirty-check, not an identity hash, so a fast
// non-cryptographic hash (xxhash) is the right tool - crypto/md5 above
// answers "what file", this answers "did it change".
func (c *Cartridge) RAMChecksum() uint64 {
	raw := c.Controller.RAM()
	if raw == nil {
		return 0
	}
	return xxhash.Sum64(raw)
}
