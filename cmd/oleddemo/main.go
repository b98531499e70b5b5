// Command oleddemo shows what the oled package can do on a Newhaven slim
// character OLED module.
//
// Hardware Setup:
//
// Connect the module's serial interface to three GPIO pins, for example on a
// Raspberry Pi:
//
//	Module     Raspberry Pi
//	VSS        GND
//	VDD        3.3V
//	SCLK       GPIO11
//	SDI        GPIO10
//	/CS        GPIO8 or GND
//
// or use -link=spi to drive SCLK and SDI from a hardware SPI port. Run with
// -sim to draw an emulated display on the terminal instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/DrJosh9000/oled"
	"github.com/DrJosh9000/oled/liquidcrystal"
	"github.com/DrJosh9000/oled/sim"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	rows     = flag.Int("rows", 2, "Display rows (1-4)")
	cols     = flag.Int("cols", 16, "Display columns (1-20)")
	link     = flag.String("link", "gpio", "How to reach the module: gpio or spi")
	sclkPin  = flag.String("sclk", "GPIO11", "SCLK pin name")
	sdiPin   = flag.String("sdi", "GPIO10", "SDI pin name")
	csPin    = flag.String("cs", "GPIO8", "/CS pin name (empty if tied low)")
	spiPort  = flag.String("spi", "", "SPI port name for -link=spi (empty for default)")
	demoMode = flag.String("demo", "all", "Demo to run: all, centered, sweep, table, legacy")
	saturate = flag.Bool("saturate", false, "Clamp positions and cut long text instead of failing")
	useSim   = flag.Bool("sim", false, "Draw an emulated display on the terminal")
	hold     = flag.Duration("hold", 3*time.Second, "How long to show each demo")
)

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := &oled.Opts{Rows: *rows, Cols: *cols, Saturate: *saturate}
	dev, cleanup, err := open(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to create display: %v", err)
	}
	defer cleanup()
	defer dev.Halt()

	log.Printf("Display initialized: %v", dev)

	demos := map[string]func(context.Context, *oled.Dev) error{
		"centered": runCenteredDemo,
		"sweep":    runSweepDemo,
		"table":    runTableDemo,
		"legacy":   runLegacyDemo,
	}
	order := []string{"centered", "sweep", "table", "legacy"}
	if *demoMode != "all" {
		if _, ok := demos[*demoMode]; !ok {
			log.Fatalf("Unknown demo: %s", *demoMode)
		}
		order = []string{*demoMode}
	}
	for _, name := range order {
		log.Printf("Running %s demo", name)
		if err := demos[name](ctx, dev); err != nil {
			log.Printf("%s demo: %v", name, err)
		}
		if err := wait(ctx, *hold); err != nil {
			break
		}
	}
	log.Print("Demo complete")
}

// open returns the display chosen by the flags and a function that releases
// whatever open acquired.
func open(ctx context.Context, opts *oled.Opts) (*oled.Dev, func(), error) {
	if *useSim {
		s := sim.New(&sim.Opts{Rows: opts.Rows, Cols: opts.Cols})
		dev, err := oled.New(s.Clock, s.Data, s.Select, opts)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go refresh(ctx, s, done)
		return dev, func() {
			cancel()
			<-done
			s.Refresh()
			s.Halt()
		}, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize periph.io: %w", err)
	}

	if *link == "spi" {
		p, err := spireg.Open(*spiPort)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open SPI port: %w", err)
		}
		dev, err := oled.NewSPI(p, opts)
		if err != nil {
			p.Close()
			return nil, nil, err
		}
		return dev, func() { p.Close() }, nil
	}

	sclk, err := pin(*sclkPin)
	if err != nil {
		return nil, nil, err
	}
	sdi, err := pin(*sdiPin)
	if err != nil {
		return nil, nil, err
	}
	var cs gpio.PinOut
	if *csPin != "" {
		if cs, err = pin(*csPin); err != nil {
			return nil, nil, err
		}
	}
	dev, err := oled.New(sclk, sdi, cs, opts)
	if err != nil {
		return nil, nil, err
	}
	return dev, func() {}, nil
}

func pin(name string) (gpio.PinOut, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %s not found", name)
	}
	return p, nil
}

// refresh redraws the emulated display until ctx is done.
func refresh(ctx context.Context, s *sim.Dev, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(50 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.Refresh(); err != nil {
				log.Printf("refresh: %v", err)
				return
			}
		}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runCenteredDemo writes a line of each alignment.
func runCenteredDemo(ctx context.Context, dev *oled.Dev) error {
	if err := dev.Clear(); err != nil {
		return err
	}
	if err := dev.PrintCentered("CENTRED", 0); err != nil {
		return err
	}
	if dev.Rows() < 2 {
		return nil
	}
	if err := dev.PrintRightJustified("RIGHT", 1); err != nil {
		return err
	}
	for r := 2; r < dev.Rows(); r++ {
		if err := dev.PrintAt(r, 0, fmt.Sprintf("ROW %d", r)); err != nil {
			return err
		}
	}
	return nil
}

// runSweepDemo animates a title onto every row in turn.
func runSweepDemo(ctx context.Context, dev *oled.Dev) error {
	if err := dev.Clear(); err != nil {
		return err
	}
	titles := []string{"NEWHAVEN", "SLIM OLED", "US2066", "HELLO"}
	for r := 0; r < dev.Rows(); r++ {
		if err := dev.Sweep(ctx, titles[r], r, '>', '<', 60*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}

var statusTable = oled.Table{
	"READY",
	"HEATING",
	"AT TEMPERATURE",
	"COOLING\x00 (fan on)",
	"FAULT",
}

// runTableDemo steps through a message table on the last row.
func runTableDemo(ctx context.Context, dev *oled.Dev) error {
	if err := dev.Clear(); err != nil {
		return err
	}
	if err := dev.PrintAt(0, 0, "STATUS"); err != nil {
		return err
	}
	row := dev.Rows() - 1
	for i := range statusTable {
		if err := dev.PrintEntryCentered(statusTable, i, row); err != nil {
			return err
		}
		if err := wait(ctx, 700*time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}

// runLegacyDemo drives the display through LiquidCrystal style calls.
func runLegacyDemo(ctx context.Context, dev *oled.Dev) error {
	lcd := liquidcrystal.New(dev)
	if err := lcd.Clear(); err != nil {
		return err
	}
	if err := lcd.Print("hello, world!"); err != nil {
		return err
	}
	if err := lcd.Blink(); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		if err := lcd.ScrollDisplayRight(); err != nil {
			return err
		}
		if err := wait(ctx, 300*time.Millisecond); err != nil {
			return err
		}
	}
	if err := lcd.Home(); err != nil {
		return err
	}
	if err := lcd.Autoscroll(); err != nil {
		log.Printf("Autoscroll: %v", err)
	}
	return lcd.NoCursor()
}
