package opcodegen

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Error sentinels, one per failure class. Wrapped instances carry the
// offending source line or opcode value; classify with errors.Cause.
var (
	ErrMalformedLine      = errors.New("malformed opcode line")
	ErrUnknownAddressing  = errors.New("unknown addressing mode")
	ErrUnparsableOpcode   = errors.New("unparsable opcode value")
	ErrDuplicateOpcode    = errors.New("duplicate opcode value")
	ErrIncompleteCoverage = errors.New("incomplete opcode coverage")
)

// Record is the normalized description of a single opcode value. Records are
// built once during Compile and never mutated afterwards.
type Record struct {
	Opcode   uint8
	Mnemonic string // uppercase, undocumented marker stripped

	// Illegal is set for mnemonics outside the documented instruction set.
	// These still have defined behavior on real hardware and still get a
	// handler in the emitted code.
	Illegal bool

	Mode   Mode // ModeNone when Crash is set
	Cycles int  // base cost; 0 when Crash is set

	// ExtraCycle is set when the instruction costs one more cycle at
	// runtime (branch taken or page boundary crossed).
	ExtraCycle bool

	// Crash marks the processor-halting KIL family: no addressing mode, no
	// cycle count, no byte length.
	Crash bool
}

// Table is the complete compiled instruction table: one Record per opcode
// value, indexed by the opcode byte itself.
type Table struct {
	Records [256]Record

	seen      [256]bool
	mnemonics map[string]struct{}
}

// Compile runs the full pass over the embedded source table and returns the
// validated instruction table. Any malformed line, unknown addressing
// abbreviation, duplicate opcode, or coverage gap aborts the compile; there
// is no partial result.
func Compile() (*Table, error) {
	return compile(sourceTable)
}

func compile(source string) (*Table, error) {
	table := &Table{mnemonics: map[string]struct{}{}}

	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parsed, err := parseLine(line)
		if err != nil {
			return nil, err
		}

		if err := table.add(parsed); err != nil {
			return nil, err
		}
	}

	for v := 0; v < len(table.Records); v++ {
		if !table.seen[v] {
			return nil, errors.Wrapf(ErrIncompleteCoverage, "no source line for opcode %#04x", v)
		}
	}

	return table, nil
}

// add normalizes one parsed line into a Record.
//
// Marker normalization: a leading '*' on the mnemonic marks the instruction
// as undocumented; a trailing '*' on the cycle count marks the conditional
// extra cycle; a leading '*' on the addressing abbreviation (the unofficial
// NOP variants) carries no meaning beyond the mnemonic's own marker and is
// dropped before resolution.
func (t *Table) add(line sourceLine) error {
	if t.seen[line.Opcode] {
		return errors.Wrapf(ErrDuplicateOpcode, "opcode %#04x described twice", line.Opcode)
	}

	record := Record{
		Opcode: line.Opcode,
		Crash:  line.Crash,
	}

	record.Mnemonic = strings.ToUpper(line.Mnemonic)
	if strings.HasPrefix(record.Mnemonic, "*") {
		record.Illegal = true
		record.Mnemonic = record.Mnemonic[1:]
	}

	if !line.Crash {
		cycles := line.Cycles
		if strings.HasSuffix(cycles, "*") {
			record.ExtraCycle = true
			cycles = strings.TrimSuffix(cycles, "*")
		}
		n, err := strconv.Atoi(cycles)
		if err != nil || n <= 0 {
			return errors.Wrapf(ErrMalformedLine, "%q: bad cycle count %q", line.Text, line.Cycles)
		}
		record.Cycles = n

		abbrev := strings.TrimPrefix(line.Abbrev, "*")
		if abbrev == "" {
			// 3-field lines omit the abbreviation entirely.
			abbrev = "imp"
		}
		mode, err := resolveMode(abbrev)
		if err != nil {
			return errors.Wrapf(err, "%q", line.Text)
		}
		record.Mode = mode
	}

	// Every distinct operation needs exactly one handler downstream, the
	// undocumented and crash families included: they still execute real (if
	// quirky) behavior the emulator must implement.
	t.mnemonics[strings.ToLower(record.Mnemonic)] = struct{}{}

	t.Records[line.Opcode] = record
	t.seen[line.Opcode] = true

	return nil
}

// Mnemonics returns the distinct lowercase mnemonics in alphabetical order.
func (t *Table) Mnemonics() []string {
	names := make([]string, 0, len(t.mnemonics))
	for name := range t.mnemonics {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
