package cartridge

// Type is the cartridge type byte at ROM offset 0x0147.
type Type uint8

const (
	TypeROM                 Type = 0x00
	TypeMBC1                Type = 0x01
	TypeMBC1RAM             Type = 0x02
	TypeMBC1RAMBattery      Type = 0x03
	TypeMBC2                Type = 0x05
	TypeMBC2Battery         Type = 0x06
	TypeROMRAM              Type = 0x08
	TypeROMRAMBattery       Type = 0x09
	TypeMBC3TimerBattery    Type = 0x0F
	TypeMBC3TimerRAMBattery Type = 0x10
	TypeMBC3                Type = 0x11
	TypeMBC3RAM             Type = 0x12
	TypeMBC3RAMBattery      Type = 0x13
	TypeMBC5                Type = 0x19
	TypeMBC5RAM             Type = 0x1A
	TypeMBC5RAMBattery      Type = 0x1B
	TypeMBC5Rumble          Type = 0x1C
	TypeMBC5RumbleRAM       Type = 0x1D
	TypeMBC5RumbleRAMBattery Type = 0x1E
)

// ramSizeForCode maps the RAM-size header byte (0x0149) to a byte count.
var ramSizeForCode = map[uint8]int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the parsed cartridge header, ROM offsets 0x0100-0x014F.
type Header struct {
	Title       string
	Type        Type
	ROMBanks    int
	RAMSize     int
	SupportsCGB bool
	CGBOnly     bool
}

func parseHeader(rom []byte) Header {
	h := Header{
		Type: Type(rom[0x0147]),
	}

	// title occupies 0x0134-0x0143; CGB cartridges reuse the last byte(s)
	// as the CGB-support flag, so stop at the first NUL either way.
	title := rom[0x0134:0x0144]
	end := 0
	for end < len(title) && title[end] != 0 {
		end++
	}
	h.Title = string(title[:end])

	switch rom[0x0143] {
	case 0x80:
		h.SupportsCGB = true
	case 0xC0:
		h.SupportsCGB = true
		h.CGBOnly = true
	}

	h.ROMBanks = (32 * 1024 << rom[0x0148]) / (16 * 1024)
	h.RAMSize = ramSizeForCode[rom[0x0149]]

	return h
}
