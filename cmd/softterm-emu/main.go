// softterm-emu runs a shell under the softterm emulation pipeline.
//
// Application output flows through the UTF-8 and ECMA-48 decoders into a
// SoftTerm over an in-memory screen buffer (and optionally a persisted
// display file); keystrokes are framed as input messages and rendered by
// the input encoder in the configured dialect.  On exit the final screen
// contents are printed, which makes the tool a convenient headless capture
// harness.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/BurntSushi/toml"
	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/tribals/softterm"
)

type config struct {
	Dialect  string `toml:"dialect"`
	Columns  int    `toml:"columns"`
	Rows     int    `toml:"rows"`
	Inverted bool   `toml:"inverted"`
	Shell    string `toml:"shell"`
	Display  string `toml:"display"`
}

func defaultConfig() config {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	// X terminal emulators choose 80 by 24 for compatibility with real
	// DEC VTs; we side with the kernel emulators and their PC 25-line
	// modes.
	return config{
		Dialect: "decvt",
		Columns: 80,
		Rows:    25,
		Shell:   shell,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type debugLogger struct{}

func (debugLogger) Debugf(format string, args ...any) {
	log.Printf(format, args...)
}

func main() {
	log.SetPrefix("softterm-emu: ")
	log.SetFlags(0)

	configPath := flag.String("config", "", "TOML configuration file")
	dialect := flag.String("dialect", "", "input dialect: decvt, sco, linux, netbsd, teken, xtermpc")
	columns := flag.Int("columns", 0, "terminal width")
	rows := flag.Int("rows", 0, "terminal height")
	inverted := flag.Bool("inverted", false, "begin in inverted mode")
	verbose := flag.Bool("verbose", false, "log ignored sequences")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dialect != "" {
		cfg.Dialect = *dialect
	}
	if *columns > 0 {
		cfg.Columns = *columns
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *inverted {
		cfg.Inverted = true
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Shell = args[0]
	}

	emulation, ok := softterm.ParseEmulation(cfg.Dialect)
	if !ok {
		log.Fatalf("unknown dialect %q", cfg.Dialect)
	}

	if err := run(cfg, emulation, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, emulation softterm.Emulation, verbose bool) error {
	cmd := exec.Command(cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM=vt220")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cfg.Columns),
		Rows: uint16(cfg.Rows),
	})
	if err != nil {
		return fmt.Errorf("pty: %w", err)
	}
	defer ptmx.Close()

	screen := softterm.NewMemoryBuffer(cfg.Columns, cfg.Rows)
	display := &softterm.MultiBuffer{}
	display.Add(screen)
	if cfg.Display != "" {
		f, err := os.OpenFile(cfg.Display, os.O_RDWR|os.O_CREATE, 0o640)
		if err != nil {
			return fmt.Errorf("display: %w", err)
		}
		defer f.Close()
		display.Add(softterm.NewUnicodeFileBuffer(f))
	}

	encoder := softterm.NewInputEncoder(emulation)
	encoder.SetDialectFunctionKeys()
	encoder.SetSizeReporter(func(w, h int) {
		pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(w), Rows: uint16(h)})
	})

	emulator := softterm.NewSoftTerm(display, encoder, encoder, softterm.Setup{
		Width:       cfg.Columns,
		Height:      cfg.Rows,
		Inverted:    cfg.Inverted,
		PanIsScroll: emulation.PanIsScroll(),
	})
	if verbose {
		emulator.SetDebugProvider(debugLogger{})
	}

	stdin := int(os.Stdin.Fd())
	if term.IsTerminal(stdin) {
		state, err := term.MakeRaw(stdin)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(stdin, state)
	}

	// Keystrokes become framed input messages, then dialect bytes.
	go func() {
		buf := make([]byte, 128)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			for _, b := range buf[:n] {
				encoder.HandleMessage(softterm.MessageUCS3(rune(b)))
			}
			for encoder.OutputAvailable() {
				if _, err := ptmx.Write(encoder.TakeOutput()); err != nil {
					return
				}
			}
		}
	}()

	// Application output drains through the pipeline and echoes to the
	// real terminal so the session stays usable.
	buf := make([]byte, 16384)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			emulator.Write(buf[:n])
			os.Stdout.Write(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				log.Printf("pty read: %v", err)
			}
			break
		}
	}
	cmd.Wait()

	fmt.Print("\r\n--- final screen ---\r\n")
	for y := 0; y < screen.Height(); y++ {
		fmt.Printf("%s\r\n", screen.Line(y))
	}
	return nil
}
