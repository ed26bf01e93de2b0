package application

import (
	"errors"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/tst"
)

var (
	errPNRNotFound   = errors.New("PNR NOT FOUND")
	errNoRecordedPNR = errors.New("NO RECORDED PNR")
)

// handleCommit はER: PNRの確定とスナップショット保存
// 取消保留中のPNRに対するERは通常の確定ではなく取消の確定になる
func (e *Engine) handleCommit(s *Session) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoActivePNR)
	}

	if p.PendingCancel {
		if p.RecordLocator != "" {
			delete(s.Snapshots, p.RecordLocator)
			if s.LastCommitted == p.RecordLocator {
				s.LastCommitted = ""
			}
		}
		s.ActivePNR = nil
		s.TSTs = nil
		return []Event{NewEvent("PNR CANCELLED")}
	}

	if len(p.Passengers) == 0 || len(p.Contacts) == 0 || p.Signature == "" {
		return fail(pnr.ErrEndPNRFirst)
	}

	// ロケータは内容導出。一度確定したPNRは以後のERでも同じロケータを保つ
	if p.RecordLocator == "" {
		p.RecordLocator = p.ContentLocator()
	}
	p.Status = pnr.StatusRecorded

	if t := s.liveTST(); t != nil && t.Status == tst.StatusCreated {
		t.Status = tst.StatusValidated
	}

	s.takeSnapshot(p.RecordLocator)

	var out emitter
	out.emit("PNR RECORDED")
	out.emit("RECORD LOCATOR " + p.RecordLocator)
	out.emitAll(e.renderLiveView(s))
	return out.events
}

// handleDisplay はRT: ライブビュー表示
func (e *Engine) handleDisplay(s *Session) []Event {
	return e.liveViewEvents(s)
}

// handleIgnore はIG: 直近コミットのスナップショットへ巻き戻す
func (e *Engine) handleIgnore(s *Session) []Event {
	locator := s.currentLocator()
	if locator == "" {
		return fail(errNoRecordedPNR)
	}
	snap, ok := s.Snapshots[locator]
	if !ok {
		return fail(errNoRecordedPNR)
	}
	s.restoreSnapshot(snap)

	var out emitter
	out.emit("IGNORED")
	out.emitAll(e.renderLiveView(s))
	return out.events
}

// handleRetrieve はIR: ロケータ指定（省略時は直近）での取り出し
// 未知のロケータはPNR NOT FOUND、そもそも何も確定していなければ
// NO RECORDED PNRと区別される
func (e *Engine) handleRetrieve(s *Session, cmd command) []Event {
	locator := cmd.locator
	if locator == "" {
		locator = s.currentLocator()
		if locator == "" {
			return fail(errNoRecordedPNR)
		}
	}
	snap, ok := s.Snapshots[locator]
	if !ok {
		return fail(errPNRNotFound)
	}
	s.restoreSnapshot(snap)
	return e.liveViewEvents(s)
}

// handleCancelPNR はXI: 内容を消して取消保留にする
// スナップショットはERで取消が確定するまで残る
func (e *Engine) handleCancelPNR(s *Session) []Event {
	p := s.ActivePNR
	if p == nil {
		return fail(pnr.ErrNoActivePNR)
	}

	locator := p.RecordLocator
	status := p.Status
	s.ActivePNR = &pnr.PNR{
		RecordLocator: locator,
		Status:        status,
		PendingCancel: true,
	}
	s.TSTs = nil

	return []Event{NewEvent("CANCELLATION PENDING - CONFIRM WITH ER")}
}
