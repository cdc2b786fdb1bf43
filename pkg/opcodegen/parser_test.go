package opcodegen

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseLineExplicitShape(t *testing.T) {
	line, err := parseLine(" 69 ADC imm 2    $69: bytes: 2 cycles: 2 A___P=>A___P __ ")
	require.NoError(t, err)

	require.Equal(t, uint8(0x69), line.Opcode)
	require.Equal(t, "ADC", line.Mnemonic)
	require.Equal(t, "imm", line.Abbrev)
	require.Equal(t, "2", line.Cycles)
	require.False(t, line.Crash)
}

func TestParseLineImpliedShape(t *testing.T) {
	line, err := parseLine(" 0A ASL 2        $0A: bytes: 1 cycles: 2 A____=>A___P __ ")
	require.NoError(t, err)

	require.Equal(t, uint8(0x0A), line.Opcode)
	require.Equal(t, "ASL", line.Mnemonic)
	require.Equal(t, "", line.Abbrev)
	require.Equal(t, "2", line.Cycles)
	require.False(t, line.Crash)
}

func TestParseLineCrashShape(t *testing.T) {
	line, err := parseLine(" 02 *KIL         $02: CRASH")
	require.NoError(t, err)

	require.Equal(t, uint8(0x02), line.Opcode)
	require.Equal(t, "*KIL", line.Mnemonic)
	require.Equal(t, "", line.Abbrev)
	require.Equal(t, "", line.Cycles)
	require.True(t, line.Crash)
}

func TestParseLineKeepsMarkersIntact(t *testing.T) {
	// Marker stripping is the record builder's job, not the tokenizer's.
	line, err := parseLine(" 1C *NOP abx 4*  $1C: bytes: 3 cycles: 4 _____=>_____ R_ absx")
	require.NoError(t, err)

	require.Equal(t, "*NOP", line.Mnemonic)
	require.Equal(t, "abx", line.Abbrev)
	require.Equal(t, "4*", line.Cycles)
}

func TestParseLineIgnoresDocSegment(t *testing.T) {
	// Everything right of the '$' duplicates metadata in another notation
	// and must not influence the parsed fields, however contradictory.
	line, err := parseLine("69 ADC imm 2 $69: bytes: 9 cycles: 9 nonsense here")
	require.NoError(t, err)

	require.Equal(t, "2", line.Cycles)
	require.Equal(t, "imm", line.Abbrev)
}

func TestParseLineRejectsWrongFieldCount(t *testing.T) {
	for _, line := range []string{
		"69 $doc",                  // 1 field
		"69 ADC imm 2 extra $doc",  // 5 fields
		"69 ADC imm zp rel 2 $doc", // 6 fields
	} {
		_, err := parseLine(line)
		require.Error(t, err, line)
		require.Equal(t, ErrMalformedLine, errors.Cause(err), line)
	}
}

func TestParseLineRejectsUnmarkedCrashShape(t *testing.T) {
	// A 2-field line is only valid for the undocumented KIL family. Anything
	// else with two fields is a curation error and must fail loudly rather
	// than be guessed at.
	_, err := parseLine("02 KIL $02: CRASH")
	require.Error(t, err)
	require.Equal(t, ErrMalformedLine, errors.Cause(err))
}

func TestParseLineRejectsBadOpcodeToken(t *testing.T) {
	for _, line := range []string{
		"GG ADC imm 2 $doc",
		"1 ADC imm 2 $doc",
		"100 ADC imm 2 $doc",
		"6g ADC imm 2 $doc",
	} {
		_, err := parseLine(line)
		require.Error(t, err, line)
		require.Equal(t, ErrUnparsableOpcode, errors.Cause(err), line)
	}
}

func TestParseLineOpcodeIsCaseInsensitive(t *testing.T) {
	line, err := parseLine("ab *LAX imm 2 $AB: bytes: 2 cycles: 2")
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), line.Opcode)
}
