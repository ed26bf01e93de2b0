package tst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
)

func TestPaxCounts_Total(t *testing.T) {
	c := PaxCounts{ADT: 2, CHD: 1, INF: 1}
	assert.Equal(t, 4, c.Total())
}

func TestTST_Live(t *testing.T) {
	var nilTST *TST
	assert.False(t, nilTST.Live())

	assert.True(t, (&TST{Status: StatusCreated}).Live())
	assert.True(t, (&TST{Status: StatusTicketed}).Live())
	assert.False(t, (&TST{Status: StatusVoid}).Live())
}

func TestTST_CoversSegment(t *testing.T) {
	tr := &TST{Segments: []int{2, 3}}
	assert.True(t, tr.CoversSegment(2))
	assert.False(t, tr.CoversSegment(1))

	var nilTST *TST
	assert.False(t, nilTST.CoversSegment(1))
}

func TestTST_Clone(t *testing.T) {
	orig := &TST{
		ID:             1,
		Segments:       []int{2},
		FrozenSegments: []pnr.Segment{{Carrier: "PC", FlightNo: 751}},
		FareBasis:      []string{"YOWPC"},
		Taxes:          []Tax{{Code: "FR", Amount: 12.5}},
		Status:         StatusCreated,
	}
	c := orig.Clone()
	assert.Equal(t, orig, c)

	c.Segments[0] = 9
	c.Taxes[0].Amount = 99
	c.FrozenSegments[0].Carrier = "XX"

	assert.Equal(t, 2, orig.Segments[0])
	assert.Equal(t, 12.5, orig.Taxes[0].Amount)
	assert.Equal(t, "PC", orig.FrozenSegments[0].Carrier)
}
