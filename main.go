package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdio "io"
	"log"
	"math"
	"os"
	"os/signal"

	"GoCRIS/internal/bus"
	"GoCRIS/internal/cpu"
	"GoCRIS/internal/fault"
	"GoCRIS/internal/io"
	"GoCRIS/internal/memory"
	"GoCRIS/rom"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	imagePath := flag.String("image", "", "Path to raw program image")
	base := flag.Uint("base", memory.RAM_START, "Load address of the image in RAM")
	ramSize := flag.Uint("ram-size", memory.RAM_SIZE, "RAM size in bytes")
	bootROM := flag.Bool("boot-rom", false, "Map the image read-only at the boot ROM address instead of loading it into RAM")
	bigEndian := flag.Bool("big-endian", false, "Big-endian target")
	v10 := flag.Bool("v10", false, "Use pre-v32 branch offsets")
	maxSteps := flag.Uint64("max-steps", 0, "Stop after this many instructions (0: no limit)")
	loadLatency := flag.Int("load-latency", 0, "Ticks before a loaded value reaches its register")
	flagLatency := flag.Int("flag-latency", 0, "Ticks before setf/clearf take effect")
	profile := flag.Bool("profile", false, "Count executed instructions and register usage")
	dumpTable := flag.Bool("dump-table", false, "Dump the instruction descriptor table and exit")
	serialDevice := flag.String("serial", "", "Send console output to this serial device instead of stdout")
	baud := flag.Int("baud", 115200, "Serial baud rate")
	flag.Parse()

	if *dumpTable {
		t := cpu.NewTable(cpu.CRISv32Model(), true)
		for i := 0; i < t.Len(); i++ {
			spew.Dump(t.Lookup(cpu.IType(i)))
		}
		return
	}

	if *imagePath == "" {
		log.Fatal("image path is required")
	}
	img, err := rom.Load(*imagePath)
	if err != nil {
		log.Fatal(err)
	}

	var console stdio.Writer = os.Stdout
	if *serialDevice != "" {
		mode := &serial.Mode{
			BaudRate: *baud,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
		port, err := serial.Open(*serialDevice, mode)
		if err != nil {
			log.Fatal(err)
		}
		defer port.Close()
		console = port
	}

	endian := bus.LittleEndian
	if *bigEndian {
		endian = bus.BigEndian
	}
	b := bus.NewBus(bus.Config{Endian: endian})

	entry, size, err := placeImage(img, *base, *ramSize, *bootROM)
	if err != nil {
		log.Fatal(err)
	}
	logrus.WithFields(logrus.Fields{
		"image": img.Path,
		"bytes": img.Size(),
	}).Info("image loaded")

	ram := memory.NewRAM(memory.RAM_START, size)
	if err := b.Attach("ram", ram); err != nil {
		log.Fatal(err)
	}
	if *bootROM {
		if err := b.Attach("bootrom", memory.NewROM(memory.BOOTROM_START, img.Data)); err != nil {
			log.Fatal(err)
		}
		entry = memory.BOOTROM_START
	} else if err := ram.Load(entry, img.Data); err != nil {
		log.Fatal(err)
	}

	regs := io.NewIORegs(memory.IO_START, console)
	if err := b.Attach("io", regs); err != nil {
		log.Fatal(err)
	}

	opts := []cpu.Option{cpu.WithConfig(cpu.Config{
		V32:         !*v10,
		LoadLatency: *loadLatency,
		FlagLatency: *flagLatency,
	})}
	var prof *cpu.UsageProfiler
	if *profile {
		prof = cpu.NewUsageProfiler()
		opts = append(opts, cpu.WithProfiler(prof))
	}

	core := cpu.New(b, opts...)
	core.Reset(entry)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := core.Run(ctx, *maxSteps)

	p := message.NewPrinter(language.English)
	p.Printf("%d instructions, %d cycles\n", core.Insts, core.Cycles)
	if prof != nil {
		for _, row := range prof.Top(10) {
			p.Printf("  %-16s %12d\n", row.Num, row.Count)
		}
	}
	if err := regs.Err(); err != nil {
		logrus.WithError(err).Warn("console output failed")
	}

	if runErr != nil {
		var f *fault.Fault
		if errors.As(runErr, &f) {
			logrus.WithFields(logrus.Fields{
				"kind":  f.Kind.String(),
				"pc":    f.PC,
				"addr":  f.Addr,
				"width": f.Width,
				"dir":   f.Dir.String(),
				"space": f.Space.String(),
			}).Error(f)
			os.Exit(1)
		}
		logrus.WithError(runErr).Error("run stopped")
		os.Exit(1)
	}
	if core.Halted() {
		logrus.WithField("pc", core.Regs().PC).Info("halted")
	}
}

// placeImage checks the -base and -ram-size flags against the image and
// returns the load address and the RAM size. A boot ROM image is mapped on
// its own and only the RAM size is checked.
func placeImage(img *rom.Image, base, ramSize uint, bootROM bool) (uint32, uint32, error) {
	if ramSize == 0 || uint64(ramSize) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("ram size %d out of range, want 1 to %d bytes", ramSize, uint64(math.MaxUint32))
	}
	size := uint32(ramSize)
	if bootROM {
		return 0, size, nil
	}
	if uint64(base) > math.MaxUint32 || uint32(base) < memory.RAM_START {
		return 0, 0, fmt.Errorf("load address 0x%x is outside RAM", base)
	}
	entry := uint32(base)
	if !img.Fits(entry-memory.RAM_START, size) {
		return 0, 0, fmt.Errorf("image %s of %d bytes does not fit at 0x%08x in %d bytes of RAM", img.Path, img.Size(), entry, size)
	}
	return entry, size, nil
}
