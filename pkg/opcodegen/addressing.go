package opcodegen

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode identifies how an instruction locates its operand.
type Mode int

const (
	// ModeNone marks records without any addressing at all (the KIL crash
	// family, which never fetches an operand).
	ModeNone Mode = iota

	ModeImplied
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeIndirectX
	ModeIndirectY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeRelative
)

// modes maps the source table's addressing abbreviations to their canonical
// mode. The set is closed; an abbreviation outside it is a curation error in
// the source table and is never silently defaulted.
var modes = map[string]Mode{
	"imp": ModeImplied,
	"imm": ModeImmediate,
	"zp":  ModeZeroPage,
	"zpx": ModeZeroPageX,
	"zpy": ModeZeroPageY,
	"izx": ModeIndirectX,
	"izy": ModeIndirectY,
	"abs": ModeAbsolute,
	"abx": ModeAbsoluteX,
	"aby": ModeAbsoluteY,
	"ind": ModeIndirect,
	"rel": ModeRelative,
}

func resolveMode(abbrev string) (Mode, error) {
	mode, ok := modes[abbrev]
	if !ok {
		return ModeNone, errors.Wrapf(ErrUnknownAddressing, "%q", abbrev)
	}
	return mode, nil
}

var modeNames = map[Mode]string{
	ModeImplied:   "Implied",
	ModeImmediate: "Immediate",
	ModeZeroPage:  "ZeroPage",
	ModeZeroPageX: "ZeroPageX",
	ModeZeroPageY: "ZeroPageY",
	ModeIndirectX: "IndirectX",
	ModeIndirectY: "IndirectY",
	ModeAbsolute:  "Absolute",
	ModeAbsoluteX: "AbsoluteX",
	ModeAbsoluteY: "AbsoluteY",
	ModeIndirect:  "Indirect",
	ModeRelative:  "Relative",
}

// modeAbbrevs holds the uppercase display labels, mirroring the source
// table's own notation.
var modeAbbrevs = map[Mode]string{
	ModeImplied:   "IMP",
	ModeImmediate: "IMM",
	ModeZeroPage:  "ZP",
	ModeZeroPageX: "ZPX",
	ModeZeroPageY: "ZPY",
	ModeIndirectX: "IZX",
	ModeIndirectY: "IZY",
	ModeAbsolute:  "ABS",
	ModeAbsoluteX: "ABX",
	ModeAbsoluteY: "ABY",
	ModeIndirect:  "IND",
	ModeRelative:  "REL",
}

func (m Mode) String() string {
	name, ok := modeNames[m]
	if !ok {
		panic(fmt.Sprintf("unable to determine name of addressing mode (%d)", m))
	}

	return name
}

// Ident returns the identifier the emitted table references for this mode.
// The consuming emulator registers its address-resolution routine under the
// same identifier, e.g. ModeAbsoluteX.
func (m Mode) Ident() string {
	return "Mode" + m.String()
}

// Abbrev returns the uppercase short label used for diagnostics and as the
// display name in emitted table entries, e.g. "IZX".
func (m Mode) Abbrev() string {
	abbrev, ok := modeAbbrevs[m]
	if !ok {
		panic(fmt.Sprintf("unable to determine abbreviation of addressing mode (%d)", m))
	}

	return abbrev
}
