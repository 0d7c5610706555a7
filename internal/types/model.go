package types

// Model selects which hardware revision the core emulates. It governs the
// post-bootrom register values and whether CGB-only features (double speed,
// the second VRAM/WRAM banks, palette RAM) are reachable.
type Model int

const (
	// Auto lets the cartridge header (the CGB-support byte at 0x0143)
	// decide between DMG and CGB.
	Auto Model = iota
	DMG
	CGB
)

func (m Model) String() string {
	switch m {
	case DMG:
		return "DMG"
	case CGB:
		return "CGB"
	default:
		return "Auto"
	}
}
