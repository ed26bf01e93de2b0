package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/tst"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/sim"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/seedrand"
)

var errNoItinerary = errors.New("NO ITINERARY")

// handlePrice は4つの運賃計算コマンドの共通入口
// 計算式は共通で、副作用（TST作成・更新、クラス再ブッキング）だけが
// モードごとに異なる
func (e *Engine) handlePrice(s *Session, cmd command) []Event {
	p := s.ActivePNR
	if p == nil || !p.HasActiveSegment() {
		return fail(errNoItinerary)
	}

	numbers, segments := e.activeSegments(p)
	counts := paxCounts(p)

	var out emitter
	switch cmd.mode {
	case sim.ModeQuote:
		if s.liveTST() == nil {
			return fail(tst.ErrNoTST)
		}
		res := e.deps.Pricing.Price(sim.PriceRequest{Segments: segments, PaxCounts: counts, Mode: cmd.mode})
		out.emit("FXX")
		out.emitAll(fareBlock(numbers, segments, counts, res, true))
		out.emit("QUOTE ONLY")

	case sim.ModePrice:
		res := e.deps.Pricing.Price(sim.PriceRequest{Segments: segments, PaxCounts: counts, Mode: cmd.mode})
		created := s.upsertTST(numbers, segments, counts, res)
		out.emit("FXP")
		out.emitAll(fareBlock(numbers, segments, counts, res, true))
		out.emit(tstStatusLine(created))

	case sim.ModeRebook:
		oldTotal := e.currentTotal(s, segments, counts)
		e.rebookActive(p, 1)
		numbers, segments = e.activeSegments(p)
		res := e.deps.Pricing.Price(sim.PriceRequest{Segments: segments, PaxCounts: counts, Mode: cmd.mode})
		created := s.upsertTST(numbers, segments, counts, res)
		out.emit("FXR")
		out.emit(fmt.Sprintf("OLD %s %.2f", res.Currency, oldTotal))
		out.emit(fmt.Sprintf("NEW %s %.2f", res.Currency, res.Total))
		out.emit(fmt.Sprintf("DIFF %s %.2f", res.Currency, sim.Round2(oldTotal-res.Total)))
		out.emit(tstStatusLine(created))

	case sim.ModeBestBuy:
		e.rebookActive(p, sim.MaxRebookSteps())
		numbers, segments = e.activeSegments(p)
		res := e.deps.Pricing.Price(sim.PriceRequest{Segments: segments, PaxCounts: counts, Mode: cmd.mode})
		s.upsertTST(numbers, segments, counts, res)
		out.emit("FXB")
		out.emitAll(fareBlock(numbers, segments, counts, res, true))
		out.emit("TST COMMITTED")
	}
	return out.events
}

// activeSegments は有効セグメントの表示番号と凍結コピーを返す
func (e *Engine) activeSegments(p *pnr.PNR) ([]int, []pnr.Segment) {
	elems := p.BuildElements(e.year())
	var numbers []int
	var segments []pnr.Segment
	for _, i := range p.ActiveSegmentIndexes() {
		numbers = append(numbers, pnr.SegmentDisplayNumber(elems, i))
		segments = append(segments, p.Itinerary[i])
	}
	return numbers, segments
}

// currentTotal は再ブッキング前の比較基準額を返す
// 有効なTSTがあればその総額、なければ現クラスでの見積もり
func (e *Engine) currentTotal(s *Session, segments []pnr.Segment, counts tst.PaxCounts) float64 {
	if t := s.liveTST(); t != nil {
		return t.Total
	}
	res := e.deps.Pricing.Price(sim.PriceRequest{Segments: segments, PaxCounts: counts, Mode: sim.ModePrice})
	return res.Total
}

// rebookActive は全有効セグメントをラダー上でsteps段安いクラスへ付け替える
func (e *Engine) rebookActive(p *pnr.PNR, steps int) {
	for _, i := range p.ActiveSegmentIndexes() {
		p.Itinerary[i].Class = sim.CheaperClass(p.Itinerary[i].Class, steps)
	}
}

// upsertTST は有効なTSTをその場で上書きし、なければ新規作成する
// （同時に有効なTSTは高々1つという不変条件を保つ）
func (s *Session) upsertTST(numbers []int, segments []pnr.Segment, counts tst.PaxCounts, res sim.FareResult) bool {
	t := s.liveTST()
	created := false
	if t == nil {
		t = &tst.TST{ID: s.NextTSTID, Status: tst.StatusCreated}
		s.NextTSTID++
		s.TSTs = append(s.TSTs, t)
		created = true
	} else {
		t.Status = tst.StatusRepriced
	}
	t.PaxCounts = counts
	t.Segments = append([]int(nil), numbers...)
	t.FrozenSegments = append([]pnr.Segment(nil), segments...)
	t.ValidatingCarrier = res.ValidatingCarrier
	t.FareBasis = append([]string(nil), res.FareBasis...)
	t.BaseFare = res.BaseFare
	t.Taxes = append([]tst.Tax(nil), res.Taxes...)
	t.Total = res.Total
	t.Currency = res.Currency
	return created
}

func tstStatusLine(created bool) string {
	if created {
		return "TST CREATED"
	}
	return "TST UPDATED"
}

// fareBlock は運賃計算結果の表示行を組み立てる
func fareBlock(numbers []int, segments []pnr.Segment, counts tst.PaxCounts, res sim.FareResult, showBasis bool) []string {
	lines := []string{paxLine(counts)}
	for i, seg := range segments {
		line := fmt.Sprintf("%2d %-2s %04d %s %s %s%s",
			numbers[i], seg.Carrier, seg.FlightNo, seg.Class, seg.DateDDMMM, seg.From, seg.To)
		if showBasis && i < len(res.FareBasis) {
			line += " " + res.FareBasis[i]
		}
		if i < len(res.SegmentFares) {
			line += fmt.Sprintf(" %.2f", res.SegmentFares[i])
		}
		lines = append(lines, line)
	}
	lines = append(lines, fmt.Sprintf("BASE %s %.2f", res.Currency, res.BaseFare))
	lines = append(lines, taxLine(res.Taxes))
	lines = append(lines, fmt.Sprintf("TOTAL %s %.2f", res.Currency, res.Total))
	return lines
}

func paxLine(counts tst.PaxCounts) string {
	parts := []string{fmt.Sprintf("ADT%d", counts.ADT)}
	if counts.Total() == 0 {
		// 氏名未入力は大人1名の見積もり
		parts = []string{"ADT1"}
	}
	if counts.CHD > 0 {
		parts = append(parts, fmt.Sprintf("CHD%d", counts.CHD))
	}
	if counts.INF > 0 {
		parts = append(parts, fmt.Sprintf("INF%d", counts.INF))
	}
	return "PAX " + strings.Join(parts, " ")
}

func taxLine(taxes []tst.Tax) string {
	parts := make([]string, len(taxes))
	for i, tx := range taxes {
		parts[i] = fmt.Sprintf("%s %.2f", tx.Code, tx.Amount)
	}
	return "TAX " + strings.Join(parts, " ")
}

func paxCounts(p *pnr.PNR) tst.PaxCounts {
	var c tst.PaxCounts
	for _, pax := range p.Passengers {
		switch pax.Type {
		case pnr.PaxChild:
			c.CHD++
		case pnr.PaxInfant:
			c.INF++
		default:
			c.ADT++
		}
	}
	return c
}

// handleFareOptions はFXL: 強度の異なる3通りの再ブッキング案を
// 何も変更せずに表示する
func (e *Engine) handleFareOptions(s *Session) []Event {
	p := s.ActivePNR
	if s.liveTST() == nil {
		return fail(tst.ErrNoTST)
	}
	if p == nil || !p.HasActiveSegment() {
		return fail(errNoItinerary)
	}

	_, segments := e.activeSegments(p)
	counts := paxCounts(p)

	var out emitter
	out.emit("FXL")
	out.emit("FARE OPTIONS")
	for i, steps := range []int{1, 2, sim.MaxRebookSteps()} {
		option := make([]pnr.Segment, len(segments))
		classes := make([]string, len(segments))
		for j, seg := range segments {
			seg.Class = sim.CheaperClass(seg.Class, steps)
			option[j] = seg
			classes[j] = seg.Class
		}
		res := e.deps.Pricing.Price(sim.PriceRequest{Segments: option, PaxCounts: counts, Mode: sim.ModeQuote})
		out.emit(fmt.Sprintf("%d %s %s %.2f", i+1, strings.Join(classes, " "), res.Currency, res.Total))
	}
	return out.events
}

// handleTSTDisplay はTQT: TST詳細の表示
func (e *Engine) handleTSTDisplay(s *Session, cmd command) []Event {
	var t *tst.TST
	if cmd.number > 0 {
		t = s.tstByID(cmd.number)
	} else {
		t = s.liveTST()
	}
	if t == nil {
		return fail(tst.ErrNoTST)
	}

	var out emitter
	out.emit(fmt.Sprintf("TST %d STATUS %s", t.ID, t.Status))
	out.emit("VALIDATING CARRIER " + t.ValidatingCarrier)
	out.emit(paxLine(t.PaxCounts))
	for i, seg := range t.FrozenSegments {
		line := fmt.Sprintf("S%d %-2s %04d %s %s %s%s",
			t.Segments[i], seg.Carrier, seg.FlightNo, seg.Class, seg.DateDDMMM, seg.From, seg.To)
		if i < len(t.FareBasis) {
			line += " " + t.FareBasis[i]
		}
		out.emit(line)
	}
	out.emit(fmt.Sprintf("BASE %s %.2f", t.Currency, t.BaseFare))
	out.emit(taxLine(t.Taxes))
	out.emit(fmt.Sprintf("TOTAL %s %.2f", t.Currency, t.Total))
	return out.events
}

// handleFareNotes はFQN: 運賃基礎コードごとの適用条件表示
// 条件はコードから決定的に導出する
func (e *Engine) handleFareNotes(s *Session, cmd command) []Event {
	t := s.liveTST()
	if t == nil {
		return fail(tst.ErrNoTST)
	}
	index := cmd.number
	if index == 0 {
		index = 1
	}
	if index < 1 || index > len(t.FareBasis) {
		return fail(pnr.ErrElementNotFound)
	}

	basis := t.FareBasis[index-1]
	rng := seedrand.New("FQN:" + basis)
	cancelFee := sim.Round2(30 + rng.Next()*70)
	changeFee := sim.Round2(20 + rng.Next()*50)

	var out emitter
	out.emit(fmt.Sprintf("FQN %d", index))
	out.emit("FARE BASIS " + basis)
	out.emit(fmt.Sprintf("CANCELLATION FEE %s %.2f", t.Currency, cancelFee))
	out.emit(fmt.Sprintf("CHANGE FEE %s %.2f", t.Currency, changeFee))
	if rng.Next() < 0.5 {
		out.emit("NONREFUNDABLE AFTER DEPARTURE")
	}
	return out.events
}
