package opcodegen

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// sourceLine is one tokenized line of the source table, markers still intact.
type sourceLine struct {
	// Text is the trimmed original line, kept for error reporting.
	Text     string
	Opcode   uint8
	Mnemonic string // raw token, may carry a leading '*'
	Abbrev   string // raw addressing abbreviation, "" for the implied and crash shapes
	Cycles   string // raw cycle token, may carry a trailing '*', "" for the crash shape
	Crash    bool
}

// parseLine tokenizes a single non-blank line of the source table.
//
// The line splits at the first '$'. The right half duplicates cycle and byte
// metadata in a different notation and is not authoritative, so only the
// left half is parsed. The number of fields on the left decides the shape:
//
//	2 fields: opcode + crash mnemonic (no addressing, no cycles)
//	3 fields: opcode + mnemonic + cycles (addressing implied)
//	4 fields: opcode + mnemonic + addressing + cycles
func parseLine(line string) (sourceLine, error) {
	left := line
	if i := strings.IndexByte(line, '$'); i >= 0 {
		left = line[:i]
	}

	parsed := sourceLine{Text: strings.TrimSpace(line)}

	fields := strings.Fields(left)
	switch len(fields) {
	case 2:
		// Only the KIL crash family omits both addressing and cycles, and
		// those rows are always marked undocumented. A 2-field line without
		// the marker is a curation error, not a crash instruction.
		if !strings.HasPrefix(fields[1], "*") {
			return sourceLine{}, errors.Wrapf(ErrMalformedLine, "%q: 2-field line without undocumented marker", parsed.Text)
		}
		parsed.Mnemonic = fields[1]
		parsed.Crash = true
	case 3:
		parsed.Mnemonic = fields[1]
		parsed.Cycles = fields[2]
	case 4:
		parsed.Mnemonic = fields[1]
		parsed.Abbrev = fields[2]
		parsed.Cycles = fields[3]
	default:
		return sourceLine{}, errors.Wrapf(ErrMalformedLine, "%q: expected 2 to 4 fields, found %d", parsed.Text, len(fields))
	}

	opcode, err := parseOpcode(fields[0])
	if err != nil {
		return sourceLine{}, errors.Wrapf(err, "%q", parsed.Text)
	}
	parsed.Opcode = opcode

	return parsed, nil
}

func parseOpcode(token string) (uint8, error) {
	if len(token) != 2 {
		return 0, errors.Wrapf(ErrUnparsableOpcode, "%q: expected exactly two hex digits", token)
	}

	v, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return 0, errors.Wrapf(ErrUnparsableOpcode, "%q", token)
	}

	return uint8(v), nil
}
