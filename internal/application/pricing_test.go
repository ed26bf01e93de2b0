package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Preconditions(t *testing.T) {
	e := newTestEngine()

	assert.Equal(t, []string{"NO ITINERARY"}, errorTexts(e.Process(NewSession(), "FXP")))
	assert.Equal(t, []string{"NO TST"}, errorTexts(e.Process(NewSession(), "FXL")))
	assert.Equal(t, []string{"NO TST"}, errorTexts(e.Process(NewSession(), "TQT")))
	assert.Equal(t, []string{"NO TST"}, errorTexts(e.Process(NewSession(), "FQN")))

	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "FXX")
	assert.Equal(t, []string{"NO TST"}, errorTexts(steps[2]))
}

func TestPrice_CreateThenUpdate(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP")
	require.Empty(t, allErrors(steps))
	assert.True(t, hasLineContaining(printTexts(steps[3]), "TST CREATED"))
	require.Len(t, s.TSTs, 1)
	assert.Equal(t, 1, s.TSTs[0].ID)
	assert.Equal(t, "CREATED", string(s.TSTs[0].Status))

	// 再計算は追加ではなく上書き
	events := e.Process(s, "FXP")
	require.Empty(t, errorTexts(events))
	assert.True(t, hasLineContaining(printTexts(events), "TST UPDATED"))
	require.Len(t, s.TSTs, 1)
	assert.Equal(t, "REPRICED", string(s.TSTs[0].Status))
}

func TestPrice_QuoteDoesNotTouchTST(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP")
	require.Empty(t, allErrors(steps))
	total := s.TSTs[0].Total
	status := s.TSTs[0].Status

	events := e.Process(s, "FXX")
	require.Empty(t, errorTexts(events))
	assert.True(t, hasLineContaining(printTexts(events), "QUOTE ONLY"))
	assert.Equal(t, total, s.TSTs[0].Total)
	assert.Equal(t, status, s.TSTs[0].Status)
}

func TestPrice_RebookChangesClassAndReports(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP", "FXR")
	require.Empty(t, allErrors(steps))

	// Yから1段安いクラスへ
	assert.Equal(t, "B", s.ActivePNR.Itinerary[0].Class)

	lines := printTexts(steps[4])
	assert.True(t, hasLineContaining(lines, "OLD EUR "))
	assert.True(t, hasLineContaining(lines, "NEW EUR "))
	assert.True(t, hasLineContaining(lines, "DIFF EUR "))
	// FXRは運賃基礎コードを表示しない
	assert.False(t, hasLineContaining(lines, "YOW"))
	assert.False(t, hasLineContaining(lines, "BOW"))
}

func TestPrice_BestBuyNeverExceedsPlainPrice(t *testing.T) {
	sell := []string{"AN26DECALGPAR", "SS1Y1", "SS2Y1", "NM1DOE/JOHN MR"}

	e := newTestEngine()
	plain := NewSession()
	steps := run(e, plain, append(append([]string{}, sell...), "FXP")...)
	require.Empty(t, allErrors(steps))

	best := NewSession()
	steps = run(e, best, append(append([]string{}, sell...), "FXB")...)
	require.Empty(t, allErrors(steps))

	assert.LessOrEqual(t, best.TSTs[0].Total, plain.TSTs[0].Total)
	assert.True(t, hasLineContaining(printTexts(steps[4]), "TST COMMITTED"))
}

func TestPrice_FareOptionsReadOnly(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP")
	require.Empty(t, allErrors(steps))
	before := s.ActivePNR.Clone()
	total := s.TSTs[0].Total

	events := e.Process(s, "FXL")
	require.Empty(t, errorTexts(events))
	lines := printTexts(events)
	assert.True(t, hasLineContaining(lines, "FARE OPTIONS"))
	// 3案、強度の昇順
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, before, s.ActivePNR)
	assert.Equal(t, total, s.TSTs[0].Total)
}

func TestPrice_TSTDisplay(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP", "TQT")
	require.Empty(t, allErrors(steps))

	lines := printTexts(steps[4])
	assert.True(t, hasLineContaining(lines, "TST 1 STATUS CREATED"))
	assert.True(t, hasLineContaining(lines, "VALIDATING CARRIER "))
	assert.True(t, hasLineContaining(lines, "TOTAL EUR "))

	// ID指定: 存在しないIDはNO TST
	assert.Empty(t, errorTexts(e.Process(s, "TQT1")))
	assert.Equal(t, []string{"NO TST"}, errorTexts(e.Process(s, "TQT9")))
}

func TestPrice_FareNotesDeterministic(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "FXP")
	require.Empty(t, allErrors(steps))

	a := e.Process(s, "FQN")
	b := e.Process(s, "FQN1")
	require.Empty(t, errorTexts(a))
	assert.Equal(t, a, b)
	assert.True(t, hasLineContaining(printTexts(a), "FARE BASIS "))

	assert.Equal(t, []string{"ELEMENT NOT FOUND"}, errorTexts(e.Process(s, "FQN5")))
}

func TestPrice_NoNamesPricesAsOneAdult(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "FXP")
	require.Empty(t, allErrors(steps))
	assert.True(t, hasLineContaining(printTexts(steps[2]), "PAX ADT1"))
}
