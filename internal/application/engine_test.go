package application

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/clock"
)

func newTestEngine() *Engine {
	fixed := clock.NewFixed(time.Date(2030, time.December, 1, 12, 0, 0, 0, time.UTC))
	return NewEngine(Deps{Clock: fixed})
}

// run は一連のコマンドを実行して全イベントを返す
func run(e *Engine, s *Session, cmds ...string) [][]Event {
	out := make([][]Event, len(cmds))
	for i, cmd := range cmds {
		out[i] = e.Process(s, cmd)
	}
	return out
}

func printTexts(events []Event) []string {
	var texts []string
	for _, ev := range events {
		if ev.Kind == KindPrint {
			texts = append(texts, ev.Text)
		}
	}
	return texts
}

func errorTexts(events []Event) []string {
	var texts []string
	for _, ev := range events {
		if ev.Kind == KindError {
			texts = append(texts, ev.Text)
		}
	}
	return texts
}

func allErrors(steps [][]Event) []string {
	var texts []string
	for _, step := range steps {
		texts = append(texts, errorTexts(step)...)
	}
	return texts
}

func hasLineContaining(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func lineIndex(lines []string, substr string) int {
	for i, line := range lines {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

var locatorLineRe = regexp.MustCompile(`^RECORD LOCATOR ([A-Z]{6})$`)

func recordLocator(events []Event) string {
	for _, ev := range events {
		if m := locatorLineRe.FindStringSubmatch(ev.Text); m != nil {
			return m[1]
		}
	}
	return ""
}

var segmentLineRe = regexp.MustCompile(`^\s*\d+\s+[A-Z0-9]{2}\s+\d{4}\s+[A-Z]\s+\d{2}[A-Z]{3}\s+[A-Z]{6}\s+\d{4}\s+\d{4}\s+[A-Z]{2}\d$`)

func segmentLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		if segmentLineRe.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}

var happyPath = []string{
	"AN26DECALGPAR",
	"SS1Y1",
	"NM1DOE/JOHN MR",
	"AP123456",
	"APE-john.doe@example.com",
	"RFTEST",
	"RMTEST REMARK",
	"OSI YY TEST MESSAGE",
	"SSR DOCS YY HK1/P/FR/1234567890/FR/01JAN90/M/01JAN30/DOE/JOHN",
	"TKTL26DEC",
	"FP CASH",
	"FXP",
	"FXX",
	"TQT",
	"ET",
	"ITR-EML",
	"ER",
	"RT",
}

func TestEngine_HappyPath(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, happyPath...)
	require.Empty(t, allErrors(steps))

	rt := printTexts(steps[len(steps)-1])
	assert.True(t, hasLineContaining(rt, "DOE/JOHN MR"))
	require.NotEmpty(t, segmentLines(rt))
	assert.True(t, hasLineContaining(rt, "SSR DOCS"))
	assert.True(t, hasLineContaining(rt, "OSI YY TEST MESSAGE"))
	assert.True(t, hasLineContaining(rt, "RM TEST REMARK"))
	assert.True(t, hasLineContaining(rt, "TKTL/26DEC"))
	assert.True(t, hasLineContaining(rt, "FP CASH"))
	assert.True(t, hasLineContaining(rt, "FA 172-"))
	assert.True(t, hasLineContaining(rt, "FB TST1"))
	assert.True(t, hasLineContaining(rt, "ITR-EML"))
	assert.True(t, hasLineContaining(rt, "REC LOC "))

	// 番号付き要素の表示順: 氏名→旅程→SSR→OSI→RM→TKTL→FP→FA→FB→ITR
	order := []string{
		"DOE/JOHN MR", segmentLines(rt)[0], "SSR DOCS", "OSI YY TEST MESSAGE",
		"RM TEST REMARK", "TKTL/26DEC", "FP CASH", "FA 172-", "FB TST1", "ITR-EML",
	}
	prev := -1
	for _, marker := range order {
		idx := lineIndex(rt, marker)
		require.GreaterOrEqual(t, idx, 0, marker)
		assert.Greater(t, idx, prev, marker)
		prev = idx
	}

	// TSTサマリは番号付き要素の後に出る
	tstIdx := lineIndex(rt, "TST 1")
	require.GreaterOrEqual(t, tstIdx, 0)
	assert.True(t, strings.Contains(rt[tstIdx], "STATUS TICKETED"))
	assert.Greater(t, tstIdx, prev)

	require.Len(t, s.ActivePNR.Tickets, 1)
	assert.Equal(t, "172-0000000001", s.ActivePNR.Tickets[0].Number)
	require.Len(t, s.ActivePNR.Receipts, 1)
	assert.Equal(t, "172-0000000001", s.ActivePNR.Receipts[0].TicketNumber)
	assert.Contains(t, s.ActivePNR.Receipts[0].PassengerName, "DOE/JOHN")
	assert.NotEmpty(t, s.ActivePNR.Receipts[0].Segments)
	assert.Equal(t, "TICKETED", string(s.TSTs[0].Status))
}

func TestEngine_Determinism(t *testing.T) {
	collect := func() [][]Event {
		e := newTestEngine()
		return run(e, NewSession(), happyPath...)
	}
	a := collect()
	b := collect()
	assert.Equal(t, a, b)
}

func TestEngine_CommitIdempotentLocator(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "NM1DOE/JOHN MR", "AP123456", "RFTEST", "ER", "ER", "ER")

	first := recordLocator(steps[3])
	require.Len(t, first, 6)
	assert.Equal(t, first, recordLocator(steps[4]))
	assert.Equal(t, first, recordLocator(steps[5]))
}

func TestEngine_ContentAddressedLocator(t *testing.T) {
	locatorFor := func(name string) string {
		e := newTestEngine()
		s := NewSession()
		steps := run(e, s, "NM1"+name, "AP123456", "RFTEST", "ER")
		return recordLocator(steps[3])
	}

	john := locatorFor("DOE/JOHN MR")
	jane := locatorFor("DOE/JANE MRS")
	johnAgain := locatorFor("DOE/JOHN MR")

	assert.Equal(t, john, johnAgain)
	assert.NotEqual(t, john, jane)
}

func TestEngine_CommitRequiresNameContactSignature(t *testing.T) {
	e := newTestEngine()

	s := NewSession()
	assert.Equal(t, []string{"NO ACTIVE PNR"}, errorTexts(e.Process(s, "ER")))

	steps := run(e, NewSession(), "NM1DOE/JOHN MR", "ER")
	assert.Equal(t, []string{"END PNR FIRST"}, errorTexts(steps[1]))

	steps = run(e, NewSession(), "NM1DOE/JOHN MR", "AP123456", "ER")
	assert.Equal(t, []string{"END PNR FIRST"}, errorTexts(steps[2]))
}

func TestEngine_IgnoreRestoresLastCommit(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s,
		"NM1DOE/JOHN MR", "AP123456", "RFTEST", "RM BASE", "ER",
		"RM UNRECORDED", "IG", "RT")
	require.Empty(t, allErrors(steps))

	rt := printTexts(steps[len(steps)-1])
	assert.True(t, hasLineContaining(rt, "RM BASE"))
	assert.False(t, hasLineContaining(rt, "UNRECORDED"))
}

func TestEngine_RetrieveVariants(t *testing.T) {
	e := newTestEngine()

	// 省略形IRはIGと同じく直近コミットへ戻す
	s := NewSession()
	steps := run(e, s,
		"NM1DOE/JOHN MR", "AP123456", "RFTEST", "RM BASE", "ER",
		"RM UNRECORDED", "IR", "RT")
	require.Empty(t, allErrors(steps))
	rt := printTexts(steps[len(steps)-1])
	assert.True(t, hasLineContaining(rt, "RM BASE"))
	assert.False(t, hasLineContaining(rt, "UNRECORDED"))

	// 未知ロケータと未コミットは別のエラー
	assert.Equal(t, []string{"PNR NOT FOUND"}, errorTexts(e.Process(NewSession(), "IR ABCDEF")))
	assert.Equal(t, []string{"NO RECORDED PNR"}, errorTexts(e.Process(NewSession(), "IR")))
	assert.Equal(t, []string{"NO RECORDED PNR"}, errorTexts(e.Process(NewSession(), "IG")))
}

func TestEngine_IgnoreKeepsLocator(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "NM1DOE/JOHN MR", "AP123456", "RFTEST", "ER")
	locator := recordLocator(steps[3])
	require.NotEmpty(t, locator)

	require.Empty(t, errorTexts(e.Process(s, "IG")))
	assert.Equal(t, locator, s.ActivePNR.RecordLocator)
}

func TestEngine_CancelPNRLifecycle(t *testing.T) {
	e := newTestEngine()
	s := NewSession()
	steps := run(e, s, "NM1DOE/JOHN MR", "AP123456", "RFTEST", "ER")
	locator := recordLocator(steps[3])
	require.NotEmpty(t, locator)
	require.Contains(t, s.Snapshots, locator)

	events := e.Process(s, "XI")
	require.Empty(t, errorTexts(events))
	assert.True(t, s.ActivePNR.PendingCancel)
	// XIだけではスナップショットは残る
	assert.Contains(t, s.Snapshots, locator)

	events = e.Process(s, "ER")
	require.Empty(t, errorTexts(events))
	assert.True(t, hasLineContaining(printTexts(events), "PNR CANCELLED"))
	assert.Nil(t, s.ActivePNR)
	assert.NotContains(t, s.Snapshots, locator)
}

func TestEngine_EmptyAndUnknownCommands(t *testing.T) {
	e := newTestEngine()
	s := NewSession()

	assert.Nil(t, e.Process(s, "   "))
	assert.Equal(t, []string{"INVALID FORMAT"}, errorTexts(e.Process(s, "ZZTOP")))

	banner := e.Process(s, "an")
	assert.Equal(t, []string{"AMADEUS SELLING PLATFORM", "TRAINING MODE"}, printTexts(banner))
}

func TestEngine_DateDisplay(t *testing.T) {
	e := newTestEngine()
	events := e.Process(NewSession(), "JD")
	assert.Equal(t, []string{"SUN DEC 01 2030"}, printTexts(events))
}

func TestEngine_Help(t *testing.T) {
	e := newTestEngine()

	lines := printTexts(e.Process(NewSession(), "HELP"))
	require.NotEmpty(t, lines)
	assert.True(t, hasLineContaining(lines, "FXP/FXX/FXR/FXB"))
	assert.True(t, hasLineContaining(lines, "ET / TTP"))

	topic := printTexts(e.Process(NewSession(), "HE AN"))
	assert.True(t, hasLineContaining(topic, "ANddMMMXXXYYY"))

	assert.Equal(t, []string{"HELP NOT FOUND"}, errorTexts(e.Process(NewSession(), "HE FOOBAR")))
}

func TestEngine_LocationsNotConfigured(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, []string{"LOCATION PROVIDER NOT CONFIGURED"}, errorTexts(e.Process(NewSession(), "DAC ALG")))
	assert.Equal(t, []string{"LOCATION PROVIDER NOT CONFIGURED"}, errorTexts(e.Process(NewSession(), "DAN PARIS")))
}

type panickyLocations struct{}

func (panickyLocations) DecodeIata(string) []string { panic("boom") }
func (panickyLocations) SearchByText(string) []string { panic("boom") }

func TestEngine_CollaboratorPanicDowngraded(t *testing.T) {
	fixed := clock.NewFixed(time.Date(2030, time.December, 1, 12, 0, 0, 0, time.UTC))
	e := NewEngine(Deps{Clock: fixed, Locations: panickyLocations{}})
	assert.Equal(t, []string{"INVALID FORMAT"}, errorTexts(e.Process(NewSession(), "DAC ALG")))
}
