package application

import (
	"sort"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
)

// handleCancel は番号・範囲・ALL指定の要素取消（XE）
// すべての対象を検証してから一括で適用する
func (e *Engine) handleCancel(s *Session, cmd command) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoActivePNR)
	}
	elems := p.BuildElements(e.year())

	var targets []pnr.Element
	if cmd.all {
		for _, el := range elems {
			if cancellableByAll(p, el) {
				targets = append(targets, el)
			}
		}
		if len(targets) == 0 {
			return fail(pnr.ErrNothingToCancel)
		}
	} else {
		for n := cmd.rangeFrom; n <= cmd.rangeTo; n++ {
			el, ok := pnr.FindElement(elems, n)
			if !ok {
				return fail(pnr.ErrElementNotFound)
			}
			targets = append(targets, el)
		}
	}

	if err := e.validateCancel(s, targets); err != nil {
		return fail(err)
	}
	if !hasNetChange(p, targets) {
		return fail(pnr.ErrNothingToCancel)
	}

	applyCancel(p, targets)

	var out emitter
	switch {
	case cmd.all:
		out.emit("ITINERARY CANCELLED")
	case len(targets) == 1:
		out.emit("ELEMENT CANCELLED")
	default:
		out.emit("ELEMENTS CANCELLED")
	}
	out.emitAll(e.renderLiveView(s))
	return out.events
}

// cancellableByAll はXEALLの対象になる要素かを返す
// 氏名・発券済み要素・レコードロケータは対象外
func cancellableByAll(p *pnr.PNR, el pnr.Element) bool {
	switch el.Kind {
	case pnr.ElementSegment:
		return p.Itinerary[el.Index].Status.Active()
	case pnr.ElementSSR, pnr.ElementOSI, pnr.ElementRemark, pnr.ElementOption,
		pnr.ElementContact, pnr.ElementEmail,
		pnr.ElementTicketTimeLimit, pnr.ElementFormOfPayment, pnr.ElementSignature:
		return true
	default:
		return false
	}
}

// validateCancel は取消の業務ルールを適用前にまとめて検証する
func (e *Engine) validateCancel(s *Session, targets []pnr.Element) error {
	p := s.ActivePNR
	live := s.liveTST()

	var activeSegCancelled int
	var adultsRemoved int
	for _, el := range targets {
		switch el.Kind {
		case pnr.ElementSegment:
			seg := p.Itinerary[el.Index]
			if !seg.Status.Active() {
				continue
			}
			if live.CoversSegment(el.Number) {
				return pnr.ErrTSTSegment
			}
			activeSegCancelled++
		case pnr.ElementPassenger:
			if live != nil {
				return pnr.ErrTSTPresent
			}
			if p.InfantLinkedTo(el.Index) {
				return pnr.ErrInfantAssociated
			}
			if p.Passengers[el.Index].Type == pnr.PaxAdult {
				adultsRemoved++
			}
		case pnr.ElementTicketFA, pnr.ElementTicketFB, pnr.ElementReceipt, pnr.ElementLocator:
			return pnr.ErrNotAllowed
		}
	}

	if adultsRemoved > 0 && p.AdultCount()-adultsRemoved < 1 {
		return pnr.ErrLastAdult
	}
	if activeSegCancelled > 0 && len(p.Passengers) == 1 &&
		len(p.ActiveSegmentIndexes())-activeSegCancelled < 1 {
		return pnr.ErrLastSegment
	}
	return nil
}

// hasNetChange は取消要求が実際に状態を変えるかを返す
// 取消済みセグメントだけを指した要求はNOTHING TO CANCELになる
func hasNetChange(p *pnr.PNR, targets []pnr.Element) bool {
	for _, el := range targets {
		if el.Kind == pnr.ElementSegment {
			if p.Itinerary[el.Index].Status.Active() {
				return true
			}
			continue
		}
		return true
	}
	return false
}

// applyCancel は検証済みの取消を適用する
// リスト系は添字の大きい順に削除して番号のずれを防ぐ
func applyCancel(p *pnr.PNR, targets []pnr.Element) {
	removals := map[pnr.ElementKind][]int{}
	for _, el := range targets {
		switch el.Kind {
		case pnr.ElementSegment:
			if p.Itinerary[el.Index].Status.Active() {
				p.Itinerary[el.Index].Status = pnr.SegmentCancelled
			}
		case pnr.ElementTicketTimeLimit:
			p.TicketTimeLimit = ""
		case pnr.ElementFormOfPayment:
			p.FormOfPayment = ""
		case pnr.ElementSignature:
			p.Signature = ""
		default:
			removals[el.Kind] = append(removals[el.Kind], el.Index)
		}
	}

	for kind, idxs := range removals {
		sort.Sort(sort.Reverse(sort.IntSlice(idxs)))
		for _, i := range idxs {
			removeAt(p, kind, i)
		}
	}
}

func removeAt(p *pnr.PNR, kind pnr.ElementKind, i int) {
	switch kind {
	case pnr.ElementPassenger:
		p.Passengers = append(p.Passengers[:i], p.Passengers[i+1:]...)
		// 削除位置より後ろの大人に紐付く幼児のリンクを詰める
		for j := range p.Passengers {
			if p.Passengers[j].Type == pnr.PaxInfant && p.Passengers[j].InfantParent > i {
				p.Passengers[j].InfantParent--
			}
		}
	case pnr.ElementSSR:
		p.SSRs = append(p.SSRs[:i], p.SSRs[i+1:]...)
	case pnr.ElementOSI:
		p.OSIs = append(p.OSIs[:i], p.OSIs[i+1:]...)
	case pnr.ElementRemark:
		p.Remarks = append(p.Remarks[:i], p.Remarks[i+1:]...)
	case pnr.ElementOption:
		p.Options = append(p.Options[:i], p.Options[i+1:]...)
	case pnr.ElementContact:
		p.Contacts = append(p.Contacts[:i], p.Contacts[i+1:]...)
	case pnr.ElementEmail:
		p.Emails = append(p.Emails[:i], p.Emails[i+1:]...)
	}
}
