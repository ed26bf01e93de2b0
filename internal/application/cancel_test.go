package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancel_SegmentKeepsCancelledVisible(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "SS2Y1", "XE1", "RT", "FXP")
	require.Empty(t, allErrors(steps))

	segs := segmentLines(printTexts(steps[4]))
	require.Len(t, segs, 2)
	assert.Contains(t, segs[0], " XX1")
	assert.Contains(t, segs[1], " HK1")

	// 取消済みセグメントは運賃計算の対象外
	require.Len(t, s.TSTs, 1)
	assert.Equal(t, []int{2}, s.TSTs[0].Segments)
}

func TestCancel_RepeatedCancelIsNothingToCancel(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "SS2Y1", "XE1", "XE1")
	assert.Equal(t, []string{"NOTHING TO CANCEL"}, errorTexts(steps[4]))
}

func TestCancel_AllThenPriceFails(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "SS2Y1", "XEALL", "FXP")
	assert.Empty(t, errorTexts(steps[3]))
	assert.Equal(t, []string{"NO ITINERARY"}, errorTexts(steps[4]))

	assert.Equal(t, []string{"NOTHING TO CANCEL"}, errorTexts(e.Process(s, "XEALL")))
}

func TestCancel_TSTLocksSegments(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "FXP", "XE1")
	assert.Equal(t, []string{"NOT ALLOWED - TST SEGMENT"}, errorTexts(steps[3]))
}

func TestCancel_LastSegmentWithSinglePassenger(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "AN26DECALGPAR", "SS1Y1", "NM1DOE/JOHN MR", "XE2")
	assert.Equal(t, []string{"NOT ALLOWED - LAST SEGMENT"}, errorTexts(steps[3]))
}

func TestCancel_PassengerGuards(t *testing.T) {
	t.Run("TST present", func(t *testing.T) {
		e := newTestEngine()
		s := NewSession()
		steps := run(e, s, "AN26DECALGPAR", "SS1Y2",
			"NM1DOE/JOHN MR 1DOE/JANE MRS", "FXP", "XE1")
		assert.Equal(t, []string{"NOT ALLOWED - TST PRESENT"}, errorTexts(steps[4]))
	})

	t.Run("last adult", func(t *testing.T) {
		e := newTestEngine()
		s := NewSession()
		steps := run(e, s, "NM1DOE/JOHN MR", "XE1")
		assert.Equal(t, []string{"NOT ALLOWED - LAST ADT"}, errorTexts(steps[1]))
	})

	t.Run("infant associated", func(t *testing.T) {
		e := newTestEngine()
		s := NewSession()
		steps := run(e, s,
			"NM1DOE/JOHN MR 1DOE/JANE MRS", "NM1DOE/BABY (INF)", "XE1")
		assert.Equal(t, []string{"NOT ALLOWED - INF ASSOCIATED"}, errorTexts(steps[2]))

		// 幼児が紐付いていない大人は取消できる
		events := e.Process(s, "XE2")
		require.Empty(t, errorTexts(events))
		require.Len(t, s.ActivePNR.Passengers, 2)
		// 削除後も幼児は残った大人に紐付いたまま
		assert.Equal(t, 0, s.ActivePNR.Passengers[1].InfantParent)
	})
}

func TestCancel_RangeRemovesSimpleElements(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s,
		"NM1DOE/JOHN MR 1DOE/JANE MRS",
		"RM FIRST", "RM SECOND", "RM THIRD", "RT")
	require.Empty(t, allErrors(steps))

	// 要素3-4 = RM FIRST / RM SECOND
	events := e.Process(s, "XE3-4")
	require.Empty(t, errorTexts(events))
	assert.Equal(t, []string{"THIRD"}, s.ActivePNR.Remarks)
}

func TestCancel_SingletonFields(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "NM1DOE/JOHN MR", "TKTL26DEC", "RT")
	require.Empty(t, allErrors(steps))

	events := e.Process(s, "XE2")
	require.Empty(t, errorTexts(events))
	assert.Empty(t, s.ActivePNR.TicketTimeLimit)
}

func TestCancel_ErrorsLeaveStateUnchanged(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	run(e, s, "AN26DECALGPAR", "SS1Y1", "SS2Y1", "NM1DOE/JOHN MR", "RM KEEP")

	// 範囲の一部が拒否されたら全体が適用されない
	before := s.ActivePNR.Clone()
	events := e.Process(s, "XE2-3")
	assert.Equal(t, []string{"NOT ALLOWED - LAST SEGMENT"}, errorTexts(events))
	assert.Equal(t, before, s.ActivePNR)
}

func TestCancel_UnknownElement(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	run(e, s, "NM1DOE/JOHN MR")
	assert.Equal(t, []string{"ELEMENT NOT FOUND"}, errorTexts(e.Process(s, "XE99")))
	assert.Equal(t, []string{"NO ACTIVE PNR"}, errorTexts(e.Process(NewSession(), "XE1")))
}
