// Package machine composes the CPU, Interconnect and cartridge into a
// single runnable Game Boy, exposing only the surface a host frontend
// needs: step one instruction, run one frame, read the framebuffer and
// sample buffer, and feed joypad state in.
package machine

import (
	"fmt"

	"github.com/gbcore/gbcore/internal/apu"
	"github.com/gbcore/gbcore/internal/boot"
	"github.com/gbcore/gbcore/internal/cartridge"
	"github.com/gbcore/gbcore/internal/cpu"
	"github.com/gbcore/gbcore/internal/interconnect"
	"github.com/gbcore/gbcore/internal/joypad"
	"github.com/gbcore/gbcore/internal/ppu"
	"github.com/gbcore/gbcore/internal/types"
	"github.com/gbcore/gbcore/pkg/log"
)

// cyclesPerFrame is the number of T-cycles in one 154-line frame at
// normal (single) speed: 456 T-cycles/line * 154 lines.
const cyclesPerFrame = 456 * 154

// Machine is a fully wired Game Boy: one cartridge, one CPU, one bus.
type Machine struct {
	CPU *cpu.CPU
	Bus *interconnect.Interconnect

	logger  log.Logger
	bootROM *boot.ROM
}

// Opt configures a Machine at construction time, following the same
// functional-options shape used throughout this module's config surface.
type Opt func(*Machine)

// WithBootROM maps a boot ROM image at address 0 instead of jumping
// straight to the cartridge entry point, running the real startup
// sequence (register init, Nintendo logo scroll, header checksum).
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *Machine) { m.bootROM = rom }
}

// WithLogger overrides the default logger.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) { m.logger = l }
}

// New builds a Machine from a cartridge image. model selects the hardware
// revision to emulate; types.Auto defers to the cartridge header's CGB
// support byte.
func New(rom []byte, model types.Model, opts ...Opt) (*Machine, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	m := &Machine{logger: log.New()}
	for _, opt := range opts {
		opt(m)
	}

	cgb := model == types.CGB || (model == types.Auto && cart.Header().CGBOnly)
	m.Bus = interconnect.New(cart, m.bootROM, cgb)
	m.Bus.Log = m.logger
	if m.bootROM != nil {
		m.CPU = cpu.NewAtBootROM(m.Bus)
	} else {
		// no boot ROM runs to switch the LCD on, so start from the LCDC
		// value it leaves behind
		m.Bus.PPU.WriteLCDC(0x91)
		m.CPU = cpu.New(m.Bus, cgb)
	}
	return m, nil
}

// Step executes exactly one CPU instruction (or one halted/stopped
// cycle) and returns the machine cycles it consumed.
func (m *Machine) Step() uint8 {
	return m.CPU.Step()
}

// RunFrame executes instructions until at least one full frame's worth
// of T-cycles has elapsed, then returns. Because instructions don't
// divide frames evenly, a frame may run a handful of cycles long rather
// than stop mid instruction; each call starts a fresh budget, so that
// overrun is not deducted from the next frame.
func (m *Machine) RunFrame() {
	var elapsed int
	for elapsed < cyclesPerFrame {
		elapsed += int(m.Step()) * 4
	}
}

// Framebuffer returns the most recently completed frame as 160x144 RGB8
// pixels.
func (m *Machine) Framebuffer() [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8 {
	return m.Bus.PPU.Frame
}

// DrainAudio returns and clears whatever stereo samples the APU has
// accumulated since the last call.
func (m *Machine) DrainAudio() []apu.Sample {
	return m.Bus.APU.Drain()
}

// SetButtonState reports a single button's pressed/released transition
// to the joypad controller, firing a Joypad interrupt on press.
func (m *Machine) SetButtonState(b joypad.Button, pressed bool) {
	m.Bus.Joypad.SetPressed(b, pressed)
}

// SaveRAM returns the cartridge's battery-backed RAM contents, or nil
// for carts with no persistent RAM.
func (m *Machine) SaveRAM() []byte { return m.Bus.Cart.SaveRAM() }

// LoadRAM restores previously saved cartridge RAM.
func (m *Machine) LoadRAM(data []byte) { m.Bus.Cart.LoadRAM(data) }

// Snapshot returns the CPU's current register file, PC/SP, IME and
// halt/stop state for a host's single-step/trace view. The bytes at PC,
// SP and HL are reachable through Bus.Read using the returned addresses.
func (m *Machine) Snapshot() cpu.Snapshot { return m.CPU.Snapshot() }
