// main compiles the curated 6502 opcode description table into the Go
// instruction table and handler stubs embeddable in the emulator's cpu
// package.
//
// The table text originates from
// https://www.nesdev.org/wiki/Visual6502wiki/6502_all_256_Opcodes. See the
// Record type in pkg/opcodegen for the semantics of the compiled entries.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hpolloni/nessie/pkg/opcodegen"
)

type generateCmd struct {
	Output string `help:"Write generated code to a file instead of stdout" type:"path"`
}

func (g *generateCmd) Run() error {
	log.Printf("Generating instruction table")

	table, err := opcodegen.Compile()
	if err != nil {
		return err
	}

	log.Printf("Found %d operations across %d opcodes", len(table.Mnemonics()), len(table.Records))

	out := os.Stdout
	if g.Output != "" {
		log.Printf("Output: %s", g.Output)

		fp, err := os.Create(g.Output)
		if err != nil {
			return err
		}
		defer fp.Close()
		out = fp
	}

	if err := table.Emit(out); err != nil {
		return err
	}

	log.Println("Done")
	return nil
}

var root struct {
	Generate generateCmd `cmd:"" help:"Compile the opcode table and emit the generated Go source"`
}

func main() {
	cli := kong.Parse(&root)
	err := cli.Run()
	cli.FatalIfErrorf(err)
}
