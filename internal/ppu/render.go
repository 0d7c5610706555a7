package ppu

import "sort"

// dmgShades maps a 2-bit DMG colour index to a greyscale RGB triple; used
// only when the PPU runs in DMG mode. In CGB mode every colour comes from
// palette RAM, including for DMG-only cartridges.
var dmgShades = [4][3]uint8{
	{0xFF, 0xFF, 0xFF},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0x00, 0x00, 0x00},
}

type spriteAttrs struct {
	y, x, tile, flags uint8
	oamIndex          uint8
}

// renderScanline paints PPU.Frame[ly] from the background, window and
// sprite layers, honouring LCDC's per-layer enable bits and sprite
// priority/ordering rules (lowest X wins on DMG, OAM index settles ties
// and is the sole rule on CGB).
func (p *PPU) renderScanline() {
	if p.ly >= ScreenHeight {
		return
	}
	var bgColor [ScreenWidth]uint8
	var bgPalNum [ScreenWidth]uint8
	var bgPriority [ScreenWidth]bool

	if p.lcdc&0x01 != 0 || p.cgb {
		p.renderBackground(&bgColor, &bgPalNum, &bgPriority)
	}
	if p.lcdc&0x20 != 0 {
		p.renderWindow(&bgColor, &bgPalNum, &bgPriority)
	}
	p.compose(&bgColor, &bgPalNum)
	if p.lcdc&0x02 != 0 {
		p.renderSprites(&bgColor, &bgPriority)
	}
}

// cgbColor decodes a little-endian RGB555 entry from one of the two CGB
// palette RAMs (8 bytes per palette, 4 colours per palette) into 8-bit RGB.
func cgbColor(ram *[64]uint8, palNum, colorIdx uint8) [3]uint8 {
	off := int(palNum)*8 + int(colorIdx)*2
	lo, hi := ram[off], ram[off+1]
	word := uint16(hi)<<8 | uint16(lo)
	r := uint8(word & 0x1F)
	g := uint8((word >> 5) & 0x1F)
	b := uint8((word >> 10) & 0x1F)
	scale := func(v uint8) uint8 { return v<<3 | v>>2 }
	return [3]uint8{scale(r), scale(g), scale(b)}
}

func (p *PPU) compose(bgColor, bgPalNum *[ScreenWidth]uint8) {
	for x := 0; x < ScreenWidth; x++ {
		if p.cgb {
			p.Frame[p.ly][x] = cgbColor(&p.bgPalette, bgPalNum[x], bgColor[x])
			continue
		}
		shade := (p.bgp >> (bgColor[x] * 2)) & 0x03
		p.Frame[p.ly][x] = dmgShades[shade]
	}
}

func (p *PPU) renderBackground(bgColor, bgPalNum *[ScreenWidth]uint8, bgPriority *[ScreenWidth]bool) {
	mapBase := uint16(0x1800)
	if p.lcdc&0x08 != 0 {
		mapBase = 0x1C00
	}
	y := p.scy + p.ly
	tileRow := uint16(y/8) * 32
	for x := 0; x < ScreenWidth; x++ {
		mapX := p.scx + uint8(x)
		tileCol := uint16(mapX / 8)
		mapAddr := mapBase + tileRow + tileCol
		tileIdx := p.vram[0][mapAddr]
		attrs := uint8(0)
		if p.cgb {
			attrs = p.vram[1][mapAddr]
		}
		col := p.tilePixel(tileIdx, attrs, mapX%8, y%8)
		bgColor[x] = col
		bgPalNum[x] = attrs & 0x07
		bgPriority[x] = attrs&0x80 != 0
	}
}

func (p *PPU) renderWindow(bgColor, bgPalNum *[ScreenWidth]uint8, bgPriority *[ScreenWidth]bool) {
	if p.ly < p.wy {
		return
	}
	wx := int(p.wx) - 7
	if wx >= ScreenWidth {
		return
	}
	mapBase := uint16(0x1800)
	if p.lcdc&0x40 != 0 {
		mapBase = 0x1C00
	}
	tileRow := uint16(p.windowLine/8) * 32
	drew := false
	for x := 0; x < ScreenWidth; x++ {
		if x < wx {
			continue
		}
		drew = true
		wpx := uint8(x - wx)
		tileCol := uint16(wpx / 8)
		mapAddr := mapBase + tileRow + tileCol
		tileIdx := p.vram[0][mapAddr]
		attrs := uint8(0)
		if p.cgb {
			attrs = p.vram[1][mapAddr]
		}
		col := p.tilePixel(tileIdx, attrs, wpx%8, p.windowLine%8)
		bgColor[x] = col
		bgPalNum[x] = attrs & 0x07
		bgPriority[x] = attrs&0x80 != 0
	}
	if drew {
		p.windowLine++
	}
}

// tilePixel decodes the 2bpp pixel at (px,py) within the tile named by
// idx, resolving the LCDC.4 addressing-mode ambiguity (unsigned from
// 0x8000 vs signed from 0x9000) and CGB attribute flips/bank select.
func (p *PPU) tilePixel(idx, attrs uint8, px, py uint8) uint8 {
	bank := uint8(0)
	if attrs&0x08 != 0 {
		bank = 1
	}
	if attrs&0x20 != 0 {
		px = 7 - px
	}
	if attrs&0x40 != 0 {
		py = 7 - py
	}
	var base uint16
	if p.lcdc&0x10 != 0 {
		base = uint16(idx) * 16
	} else {
		base = uint16(0x1000 + int16(int8(idx))*16)
	}
	rowAddr := base + uint16(py)*2
	lo := p.vram[bank][rowAddr]
	hi := p.vram[bank][rowAddr+1]
	bit := 7 - px
	return (hi>>bit&1)<<1 | (lo >> bit & 1)
}

func (p *PPU) renderSprites(bgColor *[ScreenWidth]uint8, bgPriority *[ScreenWidth]bool) {
	height := 8
	if p.lcdc&0x04 != 0 {
		height = 16
	}
	var candidates []spriteAttrs
	for i := 0; i < 40 && len(candidates) < 10; i++ {
		base := i * 4
		sy := int(p.oam[base]) - 16
		if int(p.ly) < sy || int(p.ly) >= sy+height {
			continue
		}
		candidates = append(candidates, spriteAttrs{
			y: p.oam[base], x: p.oam[base+1], tile: p.oam[base+2], flags: p.oam[base+3],
			oamIndex: uint8(i),
		})
	}
	// Lowest X wins priority on DMG, OAM index settling ties; CGB ignores
	// X and uses OAM index alone. Draw highest to lowest priority so a
	// "pixel already drawn" guard lets the first (highest-priority)
	// sprite to claim a pixel keep it.
	if !p.cgb {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].x != candidates[j].x {
				return candidates[i].x < candidates[j].x
			}
			return candidates[i].oamIndex < candidates[j].oamIndex
		})
	}
	var drawn [ScreenWidth]bool
	for i := 0; i < len(candidates); i++ {
		s := candidates[i]
		sx := int(s.x) - 8
		sy := int(s.y) - 16
		row := int(p.ly) - sy
		tile := s.tile
		if height == 16 {
			tile &^= 0x01
			if s.flags&0x40 != 0 {
				row = height - 1 - row
			}
			if row >= 8 {
				tile |= 0x01
				row -= 8
			}
		} else if s.flags&0x40 != 0 {
			row = 7 - row
		}
		cgbPalNum := s.flags & 0x07
		palBank := uint8(0)
		if s.flags&0x08 != 0 {
			palBank = 1
		}
		for px := 0; px < 8; px++ {
			x := sx + px
			if x < 0 || x >= ScreenWidth {
				continue
			}
			if drawn[x] {
				continue
			}
			srcPx := uint8(px)
			if s.flags&0x20 != 0 {
				srcPx = 7 - srcPx
			}
			pixel := p.spritePixel(tile, palBank, srcPx, uint8(row))
			if pixel == 0 {
				continue
			}
			// An opaque pixel claims x for sprite-priority purposes even
			// if BG-over-OBJ priority below ends up hiding it - a lower
			// priority sprite must not paint over a higher priority one.
			drawn[x] = true
			if !p.cgb && s.flags&0x80 != 0 && bgColor[x] != 0 {
				continue
			}
			if p.cgb && p.lcdc&0x01 != 0 && bgPriority[x] && bgColor[x] != 0 {
				continue
			}
			if p.cgb {
				p.Frame[p.ly][x] = cgbColor(&p.objPalette, cgbPalNum, pixel)
				continue
			}
			var shade uint8
			if s.flags&0x10 != 0 {
				shade = (p.obp1 >> (pixel * 2)) & 0x03
			} else {
				shade = (p.obp0 >> (pixel * 2)) & 0x03
			}
			p.Frame[p.ly][x] = dmgShades[shade]
		}
	}
}

func (p *PPU) spritePixel(tile uint8, bank uint8, px, py uint8) uint8 {
	base := uint16(tile) * 16
	rowAddr := base + uint16(py)*2
	lo := p.vram[bank][rowAddr]
	hi := p.vram[bank][rowAddr+1]
	bit := 7 - px
	return (hi>>bit&1)<<1 | (lo >> bit & 1)
}
