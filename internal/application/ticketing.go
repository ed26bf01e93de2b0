package application

import (
	"fmt"
	"time"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/tst"
)

// 券番のプレフィックス（発券航空会社コード）
const ticketPrefix = "172"

// handleIssueTicket はET/TTP: 発券
// 前提は有効セグメント、有効TST、支払い方法の順に検証する
func (e *Engine) handleIssueTicket(s *Session) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoActivePNR)
	}
	if !p.HasActiveSegment() {
		return fail(pnr.ErrNoSegments)
	}
	t := s.liveTST()
	if t == nil {
		return fail(tst.ErrNoTST)
	}
	if p.OpenTicketForTST(t.ID) != nil {
		return fail(pnr.ErrTicketAlreadyIssued)
	}
	if p.FormOfPayment == "" {
		return fail(pnr.ErrNoFormOfPayment)
	}

	number := fmt.Sprintf("%s-%010d", ticketPrefix, s.NextTicketSeq)
	s.NextTicketSeq++
	p.Tickets = append(p.Tickets, pnr.Ticket{
		Number:   number,
		TSTID:    t.ID,
		Status:   pnr.TicketIssued,
		IssuedAt: e.deps.Clock.Now().Format(time.RFC3339),
	})
	t.Status = tst.StatusTicketed

	var out emitter
	out.emit("OK - TICKET ISSUED")
	out.emit("FA " + number)
	return out.events
}

// handleVoidTicket はVOID: 指定券番（省略時は直近の有効券）の取消
// TSTに有効券が残らなければTSTもVOIDになる
func (e *Engine) handleVoidTicket(s *Session, cmd command) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoTicket)
	}

	var ticket *pnr.Ticket
	if cmd.ticket != "" {
		for i := range p.Tickets {
			if p.Tickets[i].Number == cmd.ticket && p.Tickets[i].Status != pnr.TicketVoid {
				ticket = &p.Tickets[i]
				break
			}
		}
	} else {
		ticket = p.LastOpenTicket()
	}
	if ticket == nil {
		return fail(pnr.ErrNoTicket)
	}

	ticket.Status = pnr.TicketVoid
	ticket.VoidedAt = e.deps.Clock.Now().Format(time.RFC3339)

	if t := s.tstByID(ticket.TSTID); t != nil && p.OpenTicketForTST(t.ID) == nil {
		t.Status = tst.StatusVoid
	}

	return []Event{NewEvent("TICKET VOIDED " + ticket.Number)}
}

// handleReceipt はITR-EML: 旅程受領書をメール宛先へ添付する
// 券が先、宛先が後の順で検証される
func (e *Engine) handleReceipt(s *Session) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoTicket)
	}
	ticket := p.LastOpenTicket()
	if ticket == nil {
		return fail(pnr.ErrNoTicket)
	}
	if len(p.Emails) == 0 {
		return fail(pnr.ErrNoEmailAddress)
	}

	var routes []string
	for _, i := range p.ActiveSegmentIndexes() {
		seg := p.Itinerary[i]
		routes = append(routes, fmt.Sprintf("%s%s %s", seg.From, seg.To, seg.DateDDMMM))
	}

	email := p.Emails[0]
	p.Receipts = append(p.Receipts, pnr.Receipt{
		TicketNumber:  ticket.Number,
		PassengerName: p.PrimaryPassengerName(),
		Segments:      routes,
		Email:         email,
	})

	return []Event{NewEvent("ITR SENT TO " + email)}
}
