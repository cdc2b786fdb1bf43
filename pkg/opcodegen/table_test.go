package opcodegen

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestTable() *Table {
	return &Table{mnemonics: map[string]struct{}{}}
}

func mustParse(t *testing.T, line string) sourceLine {
	parsed, err := parseLine(line)
	require.NoError(t, err)
	return parsed
}

func TestAddStripsIllegalMarker(t *testing.T) {
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "AB *LAX imm 2 $doc")))

	record := table.Records[0xAB]
	require.Equal(t, "LAX", record.Mnemonic)
	require.True(t, record.Illegal)
	require.Equal(t, ModeImmediate, record.Mode)
	require.Equal(t, 2, record.Cycles)
}

func TestAddStripsExtraCycleMarker(t *testing.T) {
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "1D ORA abx 4* $doc")))

	record := table.Records[0x1D]
	require.Equal(t, 4, record.Cycles)
	require.True(t, record.ExtraCycle)
	require.False(t, record.Illegal)
}

func TestAddStripsAddressingMarker(t *testing.T) {
	// Some unofficial NOP variants mark the addressing abbreviation too. The
	// marker carries no semantic of its own; the mnemonic's marker already
	// flags the instruction as undocumented.
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "1C *NOP *abx 4* $doc")))

	record := table.Records[0x1C]
	require.Equal(t, "NOP", record.Mnemonic)
	require.True(t, record.Illegal)
	require.Equal(t, ModeAbsoluteX, record.Mode)
	require.Equal(t, 4, record.Cycles)
	require.True(t, record.ExtraCycle)
}

func TestAddDefaultsToImplied(t *testing.T) {
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "EA NOP 2 $doc")))

	record := table.Records[0xEA]
	require.Equal(t, ModeImplied, record.Mode)
	require.Equal(t, 2, record.Cycles)
}

func TestAddCrashShape(t *testing.T) {
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "02 *KIL $02: CRASH")))

	record := table.Records[0x02]
	require.Equal(t, "KIL", record.Mnemonic)
	require.True(t, record.Crash)
	require.True(t, record.Illegal)
	require.Equal(t, ModeNone, record.Mode)
	require.Equal(t, 0, record.Cycles)
}

func TestAddRejectsDuplicateOpcode(t *testing.T) {
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "69 ADC imm 2 $doc")))

	err := table.add(mustParse(t, "69 SBC imm 2 $doc"))
	require.Error(t, err)
	require.Equal(t, ErrDuplicateOpcode, errors.Cause(err))
}

func TestAddRejectsUnknownAddressing(t *testing.T) {
	table := newTestTable()

	err := table.add(mustParse(t, "69 ADC zpz 2 $doc"))
	require.Error(t, err)
	require.Equal(t, ErrUnknownAddressing, errors.Cause(err))
}

func TestAddRejectsBadCycleCount(t *testing.T) {
	table := newTestTable()

	err := table.add(mustParse(t, "69 ADC imm x $doc"))
	require.Error(t, err)
	require.Equal(t, ErrMalformedLine, errors.Cause(err))
}

func TestAddAccumulatesMnemonics(t *testing.T) {
	// Every distinct operation gets a handler, crash and undocumented
	// mnemonics included.
	table := newTestTable()
	require.NoError(t, table.add(mustParse(t, "69 ADC imm 2 $doc")))
	require.NoError(t, table.add(mustParse(t, "65 ADC zp 3 $doc")))
	require.NoError(t, table.add(mustParse(t, "AB *LAX imm 2 $doc")))
	require.NoError(t, table.add(mustParse(t, "02 *KIL $doc")))

	require.Equal(t, []string{"adc", "kil", "lax"}, table.Mnemonics())
}

func TestCompileCoversEveryOpcodeExactlyOnce(t *testing.T) {
	table, err := Compile()
	require.NoError(t, err)

	require.Len(t, table.Records, 256)
	for v := 0; v < 256; v++ {
		require.Equal(t, uint8(v), table.Records[v].Opcode)
		require.NotEmpty(t, table.Records[v].Mnemonic)
	}
}

func TestCompileCycleBounds(t *testing.T) {
	table, err := Compile()
	require.NoError(t, err)

	for _, record := range table.Records {
		if record.Crash {
			require.Equal(t, 0, record.Cycles)
			continue
		}
		require.True(t, record.Cycles >= 1 && record.Cycles <= 8,
			"opcode %#04x has cycle count %d", record.Opcode, record.Cycles)
	}
}

func TestCompileCrashFamily(t *testing.T) {
	table, err := Compile()
	require.NoError(t, err)

	crashes := map[uint8]bool{
		0x02: true, 0x12: true, 0x22: true, 0x32: true,
		0x42: true, 0x52: true, 0x62: true, 0x72: true,
		0x92: true, 0xB2: true, 0xD2: true, 0xF2: true,
	}

	for _, record := range table.Records {
		require.Equal(t, crashes[record.Opcode], record.Crash, "opcode %#04x", record.Opcode)
		if record.Crash {
			require.Equal(t, "KIL", record.Mnemonic)
			require.Equal(t, ModeNone, record.Mode)
			require.Equal(t, 0, record.Cycles)
		}
	}
}

func TestCompileKnownOpcodes(t *testing.T) {
	table, err := Compile()
	require.NoError(t, err)

	adc := table.Records[0x69]
	require.Equal(t, "ADC", adc.Mnemonic)
	require.Equal(t, ModeImmediate, adc.Mode)
	require.Equal(t, 2, adc.Cycles)
	require.False(t, adc.Illegal)
	require.False(t, adc.ExtraCycle)

	lax := table.Records[0xAB]
	require.Equal(t, "LAX", lax.Mnemonic)
	require.True(t, lax.Illegal)
	require.Equal(t, ModeImmediate, lax.Mode)
	require.Equal(t, 2, lax.Cycles)

	ora := table.Records[0x1D]
	require.Equal(t, "ORA", ora.Mnemonic)
	require.Equal(t, ModeAbsoluteX, ora.Mode)
	require.Equal(t, 4, ora.Cycles)
	require.True(t, ora.ExtraCycle)
}

func TestCompileMnemonicSet(t *testing.T) {
	table, err := Compile()
	require.NoError(t, err)

	mnemonics := table.Mnemonics()

	// Many opcodes alias one mnemonic across addressing modes; the full
	// 6502 instruction set (undocumented included) has 75 of them.
	require.Len(t, mnemonics, 75)
	require.True(t, len(mnemonics) < 256)
	require.Contains(t, mnemonics, "adc")
	require.Contains(t, mnemonics, "kil")
	require.Contains(t, mnemonics, "lax")
}

func TestCompileRejectsIncompleteSource(t *testing.T) {
	_, err := compile("69 ADC imm 2 $doc\n65 ADC zp 3 $doc\n")
	require.Error(t, err)
	require.Equal(t, ErrIncompleteCoverage, errors.Cause(err))
	require.Contains(t, err.Error(), "0x00")
}

func TestCompileAbortsOnMalformedLine(t *testing.T) {
	_, err := compile("69 ADC imm 2 extra $doc\n")
	require.Error(t, err)
	require.Equal(t, ErrMalformedLine, errors.Cause(err))
}

func TestCompileSkipsBlankLines(t *testing.T) {
	_, err := compile("\n\n   \n69 ADC imm 2 $doc\n")
	require.Error(t, err)
	// Blank lines themselves are fine; the failure is the coverage gap.
	require.Equal(t, ErrIncompleteCoverage, errors.Cause(err))
}
