package application

import (
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/gdsdate"
)

// PNR要素の入力系コマンド
// いずれも検証をすべて済ませてから状態に反映する

func (e *Engine) handleName(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	for _, entry := range cmd.names {
		if entry.Type == pnr.PaxInfant {
			entry.InfantParent = firstFreeAdult(p)
		}
		p.Passengers = append(p.Passengers, entry)
	}
	return e.liveViewEvents(s)
}

// firstFreeAdult は幼児が未紐付けの最初の大人のインデックスを返す
func firstFreeAdult(p *pnr.PNR) int {
	for i, pax := range p.Passengers {
		if pax.Type == pnr.PaxAdult && !p.InfantLinkedTo(i) {
			return i
		}
	}
	return -1
}

func (e *Engine) handleContact(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.Contacts = append(p.Contacts, cmd.text)
	return e.liveViewEvents(s)
}

func (e *Engine) handleEmail(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.Emails = append(p.Emails, cmd.text)
	return e.liveViewEvents(s)
}

func (e *Engine) handleSignature(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.Signature = cmd.text
	return e.liveViewEvents(s)
}

func (e *Engine) handleRemark(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.Remarks = append(p.Remarks, cmd.text)
	return e.liveViewEvents(s)
}

func (e *Engine) handleOSI(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.OSIs = append(p.OSIs, pnr.OSI{Carrier: cmd.carrier, Text: cmd.text})
	return e.liveViewEvents(s)
}

func (e *Engine) handleSSR(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.SSRs = append(p.SSRs, pnr.SSR{Code: cmd.code, Carrier: cmd.carrier, Text: cmd.text})
	return e.liveViewEvents(s)
}

func (e *Engine) handleOption(s *Session, cmd command) []Event {
	if cmd.date != "" {
		if _, err := gdsdate.Parse(cmd.date, e.year()); err != nil {
			return fail(errInvalidFormat)
		}
	}
	p := s.ensurePNR()
	p.Options = append(p.Options, pnr.Option{DateDDMMM: cmd.date, Text: cmd.text})
	return e.liveViewEvents(s)
}

func (e *Engine) handleTicketTimeLimit(s *Session, cmd command) []Event {
	if _, err := gdsdate.Parse(cmd.date, e.year()); err != nil {
		return fail(errInvalidFormat)
	}
	p := s.ensurePNR()
	p.TicketTimeLimit = cmd.date
	return e.liveViewEvents(s)
}

func (e *Engine) handleFormOfPayment(s *Session, cmd command) []Event {
	p := s.ensurePNR()
	p.FormOfPayment = cmd.text
	return e.liveViewEvents(s)
}

func (e *Engine) liveViewEvents(s *Session) []Event {
	var out emitter
	out.emitAll(e.renderLiveView(s))
	return out.events
}
