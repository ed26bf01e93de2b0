package application

import (
	"fmt"
	"strings"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
)

// renderLiveView はPNRライブビュー（RTと同一）の行列を返す
// 行の番号付けは要素列の再構築結果にのみ従う
func (e *Engine) renderLiveView(s *Session) []string {
	p := s.ActivePNR
	if p == nil {
		return []string{"NO ACTIVE PNR"}
	}

	elems := p.BuildElements(e.year())
	var lines []string
	var nameRow []string

	flushNames := func() {
		if len(nameRow) > 0 {
			lines = append(lines, strings.Join(nameRow, "  "))
			nameRow = nil
		}
	}

	for _, el := range elems {
		if el.Kind == pnr.ElementPassenger {
			// 氏名は3名ごとに1行へまとめる（番号は連続）
			nameRow = append(nameRow, fmt.Sprintf("%d. %s", el.Number, p.Passengers[el.Index].Display()))
			if len(nameRow) == 3 {
				flushNames()
			}
			continue
		}
		flushNames()
		lines = append(lines, fmt.Sprintf("%2d %s", el.Number, e.elementText(s, el)))
	}
	flushNames()

	for _, t := range s.TSTs {
		if t.Live() {
			lines = append(lines, fmt.Sprintf("TST %d %s %.2f STATUS %s", t.ID, t.Currency, t.Total, t.Status))
		}
	}
	return lines
}

// elementText は氏名以外の要素1件の表示テキストを返す
func (e *Engine) elementText(s *Session, el pnr.Element) string {
	p := s.ActivePNR
	switch el.Kind {
	case pnr.ElementSegment:
		return segmentLine(p.Itinerary[el.Index])
	case pnr.ElementSSR:
		x := p.SSRs[el.Index]
		return fmt.Sprintf("SSR %s %s %s", x.Code, x.Carrier, x.Text)
	case pnr.ElementOSI:
		x := p.OSIs[el.Index]
		return fmt.Sprintf("OSI %s %s", x.Carrier, x.Text)
	case pnr.ElementRemark:
		return "RM " + p.Remarks[el.Index]
	case pnr.ElementOption:
		x := p.Options[el.Index]
		if x.DateDDMMM != "" {
			return fmt.Sprintf("OP %s/%s", x.DateDDMMM, x.Text)
		}
		return "OP " + x.Text
	case pnr.ElementTicketTimeLimit:
		return "TKTL/" + p.TicketTimeLimit
	case pnr.ElementFormOfPayment:
		return "FP " + p.FormOfPayment
	case pnr.ElementTicketFA:
		t := p.Tickets[el.Index]
		if t.Status == pnr.TicketVoid {
			return fmt.Sprintf("FA %s VOID", t.Number)
		}
		return "FA " + t.Number
	case pnr.ElementTicketFB:
		return fmt.Sprintf("FB TST%d", p.Tickets[el.Index].TSTID)
	case pnr.ElementReceipt:
		r := p.Receipts[el.Index]
		return fmt.Sprintf("ITR-EML %s %s", r.TicketNumber, r.Email)
	case pnr.ElementContact:
		return "AP" + p.Contacts[el.Index]
	case pnr.ElementEmail:
		return "APE " + p.Emails[el.Index]
	case pnr.ElementSignature:
		return "RF " + p.Signature
	case pnr.ElementLocator:
		return "REC LOC " + p.RecordLocator
	default:
		return ""
	}
}

// segmentLine は旅程セグメントの固定幅表示行を返す
// 例: "AH 1006 Y 26DEC ALGPAR 0700 0925 HK1"
func segmentLine(seg pnr.Segment) string {
	return fmt.Sprintf("%-2s %04d %s %-5s %-6s %s %s %-2s%d",
		seg.Carrier, seg.FlightNo, seg.Class, seg.DateDDMMM,
		seg.From+seg.To, seg.DepTime, seg.ArrTime, seg.Status, seg.PaxCount)
}
