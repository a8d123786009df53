package parser

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLine lays out right-aligned fields at the real character offsets of a
// full-width data line, the way the mass table file does.
func buildLine(n, z, e, ue string) string {
	width := 0
	for _, w := range columnWidths {
		width += w
	}
	line := []byte(strings.Repeat(" ", width))
	place := func(s span, field string) {
		copy(line[s.end-len(field):s.end], field)
	}
	place(neutronsSpan, n)
	place(protonsSpan, z)
	place(energySpan, e)
	place(uncSpan, ue)
	return string(line)
}

func banner() string {
	var sb strings.Builder
	for i := 0; i < HeaderLineCount; i++ {
		fmt.Fprintf(&sb, "banner line %d\n", i+1)
	}
	return sb.String()
}

func TestFieldSpans(t *testing.T) {
	assert.Equal(t, span{4, 9}, neutronsSpan)
	assert.Equal(t, span{9, 14}, protonsSpan)
	assert.Equal(t, span{54, 67}, energySpan)
	assert.Equal(t, span{68, 78}, uncSpan)
	assert.Equal(t, 78, minLineLength)
}

func TestParseRoundTripsFieldValues(t *testing.T) {
	input := banner() +
		buildLine("126", "82", "7867.453", "0.004") + "\n" +
		buildLine("20", "20", "8551.305", "0.004") + "\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 126, records[0].N)
	assert.Equal(t, 82, records[0].Z)
	assert.Equal(t, 7867.453, records[0].E)
	assert.Equal(t, 0.004, records[0].UE)
	assert.True(t, records[0].Known)
	assert.Equal(t, 208, records[0].A)
	assert.Equal(t, 44, records[0].Excess)

	assert.Equal(t, 20, records[1].N)
	assert.Equal(t, 20, records[1].Z)
	assert.Equal(t, 1.0, records[1].Ratio)
}

func TestParseBareNeutron(t *testing.T) {
	input := banner() + buildLine("1", "0", "0.0", "0.0") + "\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 1, records[0].N)
	assert.Equal(t, 0, records[0].Z)
	assert.True(t, math.IsInf(records[0].Ratio, 1))
}

func TestParseEstimatedValueIsKnown(t *testing.T) {
	input := banner() + buildLine("28", "12", "-1234#", "201#") + "\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, records[0].Known)
	assert.Equal(t, -1234.0, records[0].E)
	assert.Equal(t, 201.0, records[0].UE)
}

func TestParseBlankEnergyIsUnknown(t *testing.T) {
	input := banner() + buildLine("28", "12", "", "") + "\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.False(t, records[0].Known)
	assert.True(t, math.IsNaN(records[0].E))
	assert.True(t, math.IsNaN(records[0].UE))
}

func TestParseBlankUncertaintyKeepsKnown(t *testing.T) {
	input := banner() + buildLine("28", "12", "7100.5", "") + "\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, records[0].Known)
	assert.Equal(t, 7100.5, records[0].E)
	assert.True(t, math.IsNaN(records[0].UE))
}

func TestParseShortLineFailsWithLineNumber(t *testing.T) {
	input := banner() +
		buildLine("126", "82", "7867.453", "0.004") + "\n" +
		"too short\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 31")
	assert.Contains(t, err.Error(), "characters")
}

func TestParseBadCountFails(t *testing.T) {
	input := banner() + buildLine("12x", "82", "7867.453", "0.004") + "\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 30")
	assert.Contains(t, err.Error(), `"  12x"`)
}

func TestParseBadEnergyFails(t *testing.T) {
	input := banner() + buildLine("126", "82", "7.8.6", "0.004") + "\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 30")
}

func TestParseBannerOnlyFileYieldsNoRecords(t *testing.T) {
	records, err := Parse(strings.NewReader(banner()))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseTruncatedBannerFails(t *testing.T) {
	_, err := Parse(strings.NewReader("only line\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banner")
}

func TestParseSkipsBlankTrailingLines(t *testing.T) {
	input := banner() + buildLine("126", "82", "7867.453", "0.004") + "\n\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParseMassTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mass_1.mas20")
	content := banner() +
		buildLine("126", "82", "7867.453", "0.004") + "\n" +
		buildLine("28", "12", "", "") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := ParseMassTable(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Path)
	assert.Len(t, table.Records, 2)
	assert.Equal(t, 1, table.MeasuredCount())
}

func TestParseMassTableMissingFile(t *testing.T) {
	_, err := ParseMassTable(filepath.Join(t.TempDir(), "absent.mas20"))
	require.Error(t, err)
}
