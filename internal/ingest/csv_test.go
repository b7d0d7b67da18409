// SPDX-License-Identifier: MIT

package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcohort/cohort"
	"github.com/katalvlaran/lvcohort/internal/ingest"
)

const sample = `Line,Stoppage Reason,Shift Id,Stoppage Category,Start Datetime,End Datetime,Bottleneck Duration Seconds
L1,Jam,S1,Mechanical,2024-01-01 06:00,2024-01-01 06:05,300
L1,Jam,S1,Not Occupied,2024-01-01 07:00,2024-01-01 07:02,120
L2,Starved,S2,Material,2024-01-01 08:00,,60
L2,Starved,S2,Material,2024-01-01 09:00,2024-01-01 09:01,
`

func TestReadCSV(t *testing.T) {
	res, err := ingest.ReadCSV(strings.NewReader(sample), ingest.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped, "row without end time")
	require.Len(t, res.Observations, 3)

	first := res.Observations[0]
	assert.Equal(t, "L1", first.Attrs["Line"])
	assert.Equal(t, "Jam", first.Attrs["Stoppage Reason"])
	assert.Equal(t, 300.0, first.Values["Bottleneck Duration Seconds"])
	assert.NotContains(t, first.Attrs, "Bottleneck Duration Seconds")
	assert.True(t, first.Active)

	assert.False(t, res.Observations[1].Active, "Not Occupied is inactive")

	_, ok := res.Observations[2].Values["Bottleneck Duration Seconds"]
	assert.False(t, ok, "empty measure stays missing")
}

func TestReadCSV_BOMAndSpaces(t *testing.T) {
	in := "\ufeffLine, d\nA, 1.5\n"
	res, err := ingest.ReadCSV(strings.NewReader(in), ingest.Schema{Keys: []string{"Line"}, Measure: "d"})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "A", res.Observations[0].Attrs["Line"])
	assert.Equal(t, 1.5, res.Observations[0].Values["d"])
}

func TestReadCSV_Errors(t *testing.T) {
	_, err := ingest.ReadCSV(strings.NewReader(""), ingest.DefaultSchema())
	require.ErrorIs(t, err, ingest.ErrNoHeader)

	_, err = ingest.ReadCSV(strings.NewReader("Line,d\n"), ingest.Schema{Keys: []string{"Shift"}, Measure: "d"})
	require.ErrorIs(t, err, ingest.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"Shift"`)

	_, err = ingest.ReadCSV(strings.NewReader("Line,d\nA,1\nB,abc\n"), ingest.Schema{Keys: []string{"Line"}, Measure: "d"})
	require.ErrorIs(t, err, ingest.ErrBadMeasure)
	var rowErr *ingest.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, "d", rowErr.Column)

	_, err = ingest.ReadCSV(strings.NewReader("Line,d\nA,NaN\n"), ingest.Schema{Measure: "d"})
	require.ErrorIs(t, err, ingest.ErrBadMeasure)

	_, err = ingest.ReadCSV(strings.NewReader("Line,d\nA,1,extra\n"), ingest.Schema{Measure: "d"})
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Line)
}

// TestReadCSV_BlankKeyFormsNoCohort: rows with a blank key cell reach the
// aggregator without that attribute and are skipped there.
func TestReadCSV_BlankKeyFormsNoCohort(t *testing.T) {
	in := `Line,Stoppage Reason,Shift Id,Stoppage Category,Start Datetime,End Datetime,Bottleneck Duration Seconds
,Jam,S1,Mechanical,2024-01-01 06:00,2024-01-01 06:05,10
 ,Jam,S1,Mechanical,2024-01-01 06:10,2024-01-01 06:15,20
L1,Jam,S1,Mechanical,2024-01-01 07:00,2024-01-01 07:05,5
L1,Jam,S1,Mechanical,2024-01-01 07:10,2024-01-01 07:15,7
`
	s := ingest.DefaultSchema()
	res, err := ingest.ReadCSV(strings.NewReader(in), s)
	require.NoError(t, err)
	require.Len(t, res.Observations, 4)
	assert.NotContains(t, res.Observations[0].Attrs, "Line")
	assert.NotContains(t, res.Observations[1].Attrs, "Line")

	tbl, err := cohort.Aggregate(res.Observations, s.Keys, s.Measure)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "L1 | Jam | S1", tbl.Keys[0].String())
	assert.Equal(t, 2, tbl.Skipped)
	assert.Equal(t, 6.0, tbl.Features[0].Mean)
}

// TestReadCSV_LineCountsQuotedNewlines: a multi-line quoted cell shifts the
// reported line of every later record.
func TestReadCSV_LineCountsQuotedNewlines(t *testing.T) {
	in := "Line,Note,d\nA,\"first\nsecond\nthird\",1\nB,ok,abc\n"
	_, err := ingest.ReadCSV(strings.NewReader(in), ingest.Schema{Keys: []string{"Line"}, Measure: "d"})
	require.ErrorIs(t, err, ingest.ErrBadMeasure)
	var rowErr *ingest.RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 5, rowErr.Line)

	_, err = ingest.ReadCSV(strings.NewReader("Line,Note,d\nA,\"x\ny\",1\nB,ok,1,extra\n"), ingest.Schema{Measure: "d"})
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 4, rowErr.Line)
}
