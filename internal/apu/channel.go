package apu

var dutyTable = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{1, 0, 0, 0, 0, 0, 0, 1}, // 25%
	{1, 0, 0, 0, 0, 1, 1, 1}, // 50%
	{0, 1, 1, 1, 1, 1, 1, 0}, // 75%
}

// pulseChannel models channels 1 and 2. Channel 2 simply never arms the
// sweep unit (sweepCapable stays false), so tickSweep/the sweep
// registers are no-ops for it.
type pulseChannel struct {
	sweepCapable bool

	enabled bool
	dacOn   bool

	duty     uint8
	dutyPos  uint8
	lengthCt uint8
	lenEnable bool

	envVolume   uint8
	envInitial  uint8
	envIncrease bool
	envPeriod   uint8
	envTimer    uint8

	freq      uint16
	timer     int32

	sweepPeriod  uint8
	sweepNegate  bool
	sweepShift   uint8
	sweepTimer   uint8
	sweepShadow  uint16
	sweepEnabled bool
}

func (c *pulseChannel) tickTimer() {
	if !c.enabled {
		return
	}
	c.timer--
	if c.timer <= 0 {
		c.timer = int32((2048 - c.freq) * 4)
		c.dutyPos = (c.dutyPos + 1) % 8
	}
}

func (c *pulseChannel) tickLength() {
	if c.lenEnable && c.lengthCt > 0 {
		c.lengthCt--
		if c.lengthCt == 0 {
			c.enabled = false
		}
	}
}

func (c *pulseChannel) tickEnvelope() {
	if c.envPeriod == 0 {
		return
	}
	if c.envTimer > 0 {
		c.envTimer--
		if c.envTimer == 0 {
			c.envTimer = c.envPeriod
			if c.envIncrease && c.envVolume < 15 {
				c.envVolume++
			} else if !c.envIncrease && c.envVolume > 0 {
				c.envVolume--
			}
		}
	}
}

func (c *pulseChannel) tickSweep() {
	if !c.sweepCapable || !c.sweepEnabled {
		return
	}
	if c.sweepTimer > 0 {
		c.sweepTimer--
		if c.sweepTimer == 0 {
			c.sweepTimer = c.sweepPeriod
			if c.sweepPeriod != 0 {
				newFreq := c.sweepCalc()
				if newFreq <= 2047 && c.sweepShift != 0 {
					c.freq = newFreq
					c.sweepShadow = newFreq
					c.sweepCalc()
				}
			}
		}
	}
}

func (c *pulseChannel) sweepCalc() uint16 {
	delta := c.sweepShadow >> c.sweepShift
	var newFreq uint16
	if c.sweepNegate {
		newFreq = c.sweepShadow - delta
	} else {
		newFreq = c.sweepShadow + delta
	}
	if newFreq > 2047 {
		c.enabled = false
	}
	return newFreq
}

func (c *pulseChannel) trigger() {
	c.enabled = true
	if c.lengthCt == 0 {
		c.lengthCt = 64
	}
	c.timer = int32((2048 - c.freq) * 4)
	c.envTimer = c.envPeriod
	c.envVolume = c.envInitial
	c.sweepShadow = c.freq
	c.sweepTimer = c.sweepPeriod
	c.sweepEnabled = c.sweepPeriod != 0 || c.sweepShift != 0
	if c.sweepShift != 0 {
		c.sweepCalc()
	}
	if !c.dacOn {
		c.enabled = false
	}
}

func (c *pulseChannel) output() float32 {
	if !c.enabled || !c.dacOn {
		return 0
	}
	if dutyTable[c.duty][c.dutyPos] == 0 {
		return 0
	}
	return float32(c.envVolume) / 15
}
