// Command gbcore runs a Game Boy ROM against the core emulator,
// optionally streaming frames to a browser over --headless instead of
// opening a window (this binary has no window backend of its own - it
// is a thin driver over the core, not a GUI frontend).
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/gbcore/gbcore/internal/boot"
	"github.com/gbcore/gbcore/internal/host"
	"github.com/gbcore/gbcore/internal/machine"
	"github.com/gbcore/gbcore/internal/types"
	"github.com/gbcore/gbcore/pkg/log"
)

const (
	exitOK            = 0
	exitUsage         = 1
	exitEmulationFail = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	bootPath := fs.String("boot", "", "boot ROM image to run before the cartridge entry point")
	model := fs.String("model", "auto", "model to emulate: auto, dmg, or cgb")
	debug := fs.Bool("debug", false, "log a CPU register snapshot every 60 frames")
	headless := fs.Bool("headless", false, "stream frames over a websocket instead of requiring a window backend")
	addr := fs.String("addr", "localhost:8765", "listen address for --headless frame streaming")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gbcore [flags] <rom path>")
		return exitUsage
	}

	logger := log.New()

	rom, err := host.LoadROM(fs.Arg(0))
	if err != nil {
		logger.Errorf("load rom: %v", err)
		return exitUsage
	}

	var opts []machine.Opt
	if *bootPath != "" {
		bootData, err := host.LoadROM(*bootPath)
		if err != nil {
			logger.Errorf("load boot rom: %v", err)
			return exitUsage
		}
		opts = append(opts, machine.WithBootROM(boot.LoadBootROM(bootData)))
	}
	if *debug {
		logger.Debugf("CPU trace enabled")
	}
	opts = append(opts, machine.WithLogger(logger))

	var hwModel types.Model
	switch *model {
	case "dmg":
		hwModel = types.DMG
	case "cgb":
		hwModel = types.CGB
	default:
		hwModel = types.Auto
	}
	m, err := machine.New(rom, hwModel, opts...)
	if err != nil {
		logger.Errorf("start machine: %v", err)
		return exitEmulationFail
	}

	if *headless {
		display := host.NewWebDisplay()
		http.Handle("/", display.Handler())
		go func() {
			if err := http.ListenAndServe(*addr, nil); err != nil {
				logger.Errorf("headless server: %v", err)
			}
		}()
		logger.Infof("streaming frames on ws://%s", *addr)
		for frame := 0; ; frame++ {
			m.RunFrame()
			display.Broadcast(m.Framebuffer())
			traceFrame(logger, m, *debug, frame)
		}
	}

	for frame := 0; ; frame++ {
		m.RunFrame()
		traceFrame(logger, m, *debug, frame)
	}
}

// traceFrame logs the CPU's register/IME/halt snapshot once a second of
// emulated time when --debug is set.
func traceFrame(logger log.Logger, m *machine.Machine, debug bool, frame int) {
	if !debug || frame%60 != 0 {
		return
	}
	s := m.Snapshot()
	logger.Debugf("frame %d: pc=%#04x sp=%#04x af=%#04x bc=%#04x de=%#04x hl=%#04x ime=%v halted=%v",
		frame, s.PC, s.SP, s.AF(), s.BC(), s.DE(), s.HL(), s.IME, s.Halted)
}
