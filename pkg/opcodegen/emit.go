package opcodegen

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

const outputTemplate = `// Code generated by opcodegen. DO NOT EDIT.

package cpu

// One operation tag per distinct mnemonic. The table and the dispatch map
// below reference these tags, so a missing or misspelled handler is a
// compile error in this package rather than a bad symbol lookup at runtime.
const (
{{- range $i, $stub := .Stubs }}
	{{ $stub.Op }}{{ if eq $i 0 }} operation = iota{{ end }}
{{- end }}
)

// opcodeTable describes every opcode byte of the 6502, documented or not.
// The table index is the opcode value itself; a consumer indexes it directly
// with the fetched opcode byte.
var opcodeTable = [256]instruction{
{{- range .Entries }}
	{{ .Literal }} // {{ .Opcode }}
{{- end }}
}

// dispatch binds each operation tag to its handler.
var dispatch = map[operation]func(*CPU, Address){
{{- range .Stubs }}
	{{ .Op }}: {{ .Func }},
{{- end }}
}
{{ range .Stubs }}
func {{ .Func }}(c *CPU, addr Address) {
	panic("{{ .Func }}: not implemented")
}
{{ end -}}
`

type view struct {
	Entries []entryView
	Stubs   []stubView
}

type entryView struct {
	Opcode  string // "0x00", emitted as the per-entry comment
	Literal string // the full struct literal, shaped in Go to keep the template dumb
}

type stubView struct {
	Op   string // operation tag, e.g. "opAdc"
	Func string // handler func name, e.g. "adc"
}

// Emit renders the generated Go source for the compiled table: the operation
// tags, the 256-entry opcode table, the dispatch map, and one panicking stub
// per operation, in that order. Output is deterministic: the table is in
// ascending opcode order and everything else is alphabetical.
func (t *Table) Emit(w io.Writer) error {
	tmpl, err := template.New("output").Parse(outputTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, newView(t))
}

func newView(t *Table) view {
	var v view

	for _, record := range t.Records {
		v.Entries = append(v.Entries, entryView{
			Opcode:  fmt.Sprintf("0x%02X", record.Opcode),
			Literal: entryLiteral(record),
		})
	}

	for _, name := range t.Mnemonics() {
		v.Stubs = append(v.Stubs, stubView{
			Op:   operationTag(name),
			Func: name,
		})
	}

	return v
}

func operationTag(mnemonic string) string {
	return "op" + strings.Title(strings.ToLower(mnemonic))
}

func entryLiteral(r Record) string {
	if r.Crash {
		// Crash entries carry no addressing mode and no cycle count; the
		// zero Mode and zero cycles stay absent from the literal.
		return fmt.Sprintf("{op: %s, name: %q, illegal: true, crash: true},", operationTag(r.Mnemonic), r.Mnemonic)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "{op: %s, mode: %s, name: %q, modeName: %q, cycles: %d",
		operationTag(r.Mnemonic), r.Mode.Ident(), r.Mnemonic, r.Mode.Abbrev(), r.Cycles)
	if r.Illegal {
		b.WriteString(", illegal: true")
	}
	if r.ExtraCycle {
		b.WriteString(", extraCycle: true")
	}
	b.WriteString("},")

	return b.String()
}
