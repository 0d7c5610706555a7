package interconnect

// oamDMA models the 0xFF46 OAM DMA transfer: writing a source page
// triggers a 160-byte copy that proceeds one byte per machine cycle,
// during which the CPU's own OAM access is blocked (PPU.LockOAM).
type oamDMA struct {
	active   bool
	register uint8
	source   uint16
	cursor   uint16
}

func (ic *Interconnect) startOAMDMA(page uint8) {
	ic.dma.register = page
	ic.dma.active = true
	ic.dma.source = uint16(page) << 8
	ic.dma.cursor = 0
}

func (ic *Interconnect) stepDMA() {
	if !ic.dma.active {
		return
	}
	b := ic.Read(ic.dma.source + ic.dma.cursor)
	ic.PPU.WriteOAMDMA(ic.dma.cursor, b)
	ic.dma.cursor++
	if ic.dma.cursor >= 0xA0 {
		ic.dma.active = false
	}
}

// vramDMA models the CGB HDMA5 controller: a general-purpose (GDMA) mode
// that copies its whole block immediately, and an HBlank-gated (HDMA)
// mode that copies one 16-byte block per HBlank entry.
type vramDMA struct {
	hblankMode bool
	active     bool
	source     uint16
	dest       uint16
	blocksLeft uint8
}

func (h *vramDMA) readHDMA5() uint8 {
	if !h.active {
		return 0xFF
	}
	return h.blocksLeft - 1
}

func (h *vramDMA) writeHDMA5(ic *Interconnect, v uint8) {
	if !ic.cgb {
		return
	}
	if h.active && h.hblankMode && v&0x80 == 0 {
		h.active = false
		return
	}
	h.hblankMode = v&0x80 != 0
	h.blocksLeft = v&0x7F + 1
	h.active = true
	if !h.hblankMode {
		h.copyBlocksNow(ic)
	}
}

func (h *vramDMA) copyBlocksNow(ic *Interconnect) {
	for h.blocksLeft > 0 {
		h.copyOneBlock(ic)
	}
	h.active = false
}

func (h *vramDMA) onHBlank(ic *Interconnect) {
	if h.active && h.hblankMode {
		h.copyOneBlock(ic)
	}
}

func (h *vramDMA) copyOneBlock(ic *Interconnect) {
	for i := 0; i < 16; i++ {
		ic.PPU.WriteVRAMRaw(h.dest, ic.Read(h.source))
		h.source++
		h.dest++
	}
	h.blocksLeft--
	if h.blocksLeft == 0 {
		h.active = false
	}
}

// stepCopying is a no-op hook kept for symmetry with the HBlank trigger;
// general-purpose transfers complete synchronously in writeHDMA5.
func (h *vramDMA) stepCopying(ic *Interconnect) {}
