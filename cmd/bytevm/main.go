// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/bytevm/emulator"
	"github.com/ezrec/bytevm/internal"
	"github.com/ezrec/bytevm/translate"
)

// Options are the command line settings for a single run.
type Options struct {
	Image    string // Program image file.
	HexImage string // Program image as hex text.
	Budget   int    // Step budget.
	Watch    string // Watch expression.
	Output   string // Print output file, or "-" for stdout.
	Dump     bool   // Dump machine state to Stderr on exit.
	Verbose  bool   // Verbose logging.

	Stdout io.Writer
	Stderr io.Writer
}

// run executes a program image. The output file, if any, is closed before
// run returns.
func run(opts Options) (emu *emulator.Emulator, err error) {
	emu = emulator.NewEmulator()
	emu.Verbose = opts.Verbose
	emu.Budget = opts.Budget

	switch {
	case len(opts.Image) != 0 && len(opts.HexImage) != 0:
		err = errors.New("-i and -x are exclusive")
		return
	case len(opts.Image) != 0:
		emu.Image, err = emulator.LoadImage(opts.Image)
		if err != nil {
			err = errors.Wrap(err, opts.Image)
			return
		}
	case len(opts.HexImage) != 0:
		emu.Image, err = emulator.ParseImage(opts.HexImage)
		if err != nil {
			err = errors.Wrap(err, "-x")
			return
		}
	}

	if len(opts.Watch) != 0 {
		emu.Watch, err = emulator.NewWatch(opts.Watch, emu.Defines())
		if err != nil {
			return
		}
	}

	if opts.Output == "-" {
		emu.Output = opts.Stdout
	} else {
		var ouf *os.File
		ouf, err = os.Create(opts.Output)
		if err != nil {
			err = errors.Wrap(err, opts.Output)
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil && cerr != nil {
				err = errors.Wrap(cerr, opts.Output)
			}
		}()
		emu.Output = ouf
	}

	err = emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	if opts.Dump {
		fmt.Fprint(opts.Stderr, emu.Machine.String())
		fmt.Fprint(opts.Stderr, hex.Dump(emu.Memory[:]))
	}

	return
}

func main() {
	opts := Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	var defines bool

	flag.StringVar(&opts.Image, "i", "", "Program image file (.hex for hex text)")
	flag.StringVar(&opts.HexImage, "x", "", "Program image as hex text")
	flag.IntVar(&opts.Budget, "n", 0, "Step budget, 0 for unlimited")
	flag.StringVar(&opts.Watch, "w", "", "Stop when this expression is true")
	flag.StringVar(&opts.Output, "o", "-", "Print output")
	flag.BoolVar(&opts.Dump, "d", false, "Dump machine state on exit")
	flag.BoolVar(&defines, "D", false, "List watch expression defines and exit")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if opts.Verbose {
		log.Printf("bytevm: messages in %v", translate.Language())
	}

	if defines {
		table, keys := internal.IterSeq2Collect(emulator.NewEmulator().Defines())
		for _, key := range keys {
			fmt.Printf("%v=%v\n", key, table[key])
		}
		return
	}

	emu, err := run(opts)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		os.Exit(1)
	}

	if opts.Verbose {
		log.Printf("bytevm: %v after %d steps", emu.Halt, emu.Steps())
	}
}
