// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/ldst/config"
	"github.com/ezrec/ldst/ldst"
	"github.com/ezrec/ldst/rom"
	"github.com/ezrec/ldst/translate"
)

var f = translate.From

// options are the command line settings.
type options struct {
	out     string
	listing string
	script  string
	defines []string
	verbose bool
	symbols bool
}

// symbolEntry is one line of the --symbols dump.
type symbolEntry struct {
	Name    string
	Value   uint64
	Builtin bool
}

// ErrDefineFlag reports a --define without '='.
type ErrDefineFlag string

func (err ErrDefineFlag) Error() string {
	return f("--define %v: expected NAME=VALUE", string(err))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ldstasm [flags] asmfile",
		Short: "Assembler for the LDST processor",
		Long: `ldstasm assembles an LDST source file into a program ROM image.

The output format is selected by the extension of the output file:
'.mem' writes a memory image with one hexadecimal word per line, '.v'
writes a Verilog ROM module, and anything else writes a memory image.
Without --out the memory image is written to a.mem.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "", "output file (.mem or .v)")
	flags.StringVarP(&opts.listing, "listing", "l", "", "listing file to write")
	flags.StringVarP(&opts.script, "config", "c", "", "Starlark build script")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "predefine a symbol, NAME=VALUE")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	flags.BoolVar(&opts.symbols, "symbols", false, "dump the symbol table to stderr")

	return cmd
}

// run assembles the source, then writes the outputs.
func run(cmd *cobra.Command, opts *options, source string) (err error) {
	asm := &ldst.Assembler{}

	if len(opts.script) != 0 {
		var cfg *config.Config
		cfg, err = config.Load(opts.script)
		if err != nil {
			return
		}
		if !cmd.Flags().Changed("out") {
			opts.out = cfg.Out
		}
		if !cmd.Flags().Changed("listing") {
			opts.listing = cfg.Listing
		}
		if !cmd.Flags().Changed("verbose") {
			opts.verbose = cfg.Verbose
		}
		for _, def := range cfg.Defines {
			asm.Predefine(def.Name, def.Value)
		}
	}

	for _, def := range opts.defines {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			err = ErrDefineFlag(def)
			return
		}
		asm.Predefine(name, value)
	}

	asm.Verbose = opts.verbose

	prog, err := asm.ParseFile(source)
	if err != nil {
		return
	}

	out := opts.out
	if len(out) == 0 {
		out = rom.DEFAULT_OUTPUT
	}

	image := rom.New(prog)
	fsys := rom.DirFS("")

	format := rom.FormatOf(out)
	if opts.verbose {
		log.Printf("%v: %v words, %v\n", out, len(image.Data), format)
	}

	err = image.WriteFile(fsys, out, format)
	if err != nil {
		return
	}

	if len(opts.listing) != 0 {
		err = image.WriteFile(fsys, opts.listing, rom.FORMAT_LISTING)
		if err != nil {
			return
		}
	}

	if opts.symbols {
		var entries []symbolEntry
		for name, value := range prog.Symbols.All() {
			entries = append(entries, symbolEntry{
				Name:    name,
				Value:   value,
				Builtin: prog.Symbols.Builtin(name),
			})
		}
		printer := pp.New()
		printer.SetColoringEnabled(false)
		_, err = printer.Fprintln(cmd.ErrOrStderr(), entries)
	}

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ldstasm: ")

	err := newRootCmd().Execute()
	if err != nil {
		log.Fatal(err)
	}
}
