package application

import (
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/tst"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/sim"
)

// AvailabilityResult は直近の空席照会結果
// SSの行番号指定はこの結果に対して解決される
type AvailabilityResult struct {
	Query   sim.AvailabilityQuery `json:"query"`
	Flights []sim.Flight          `json:"flights"`
}

// Snapshot はER時点のPNRとTSTの凍結コピー
type Snapshot struct {
	PNR  *pnr.PNR   `json:"pnr"`
	TSTs []*tst.TST `json:"tsts"`
}

// Session はワークステーション1席分の全状態
// エンジンは渡されたSessionだけを読み書きし、パッケージレベルの
// 可変状態を持たない。全フィールドはシリアライズ可能
type Session struct {
	ActivePNR        *pnr.PNR             `json:"active_pnr,omitempty"`
	LastAvailability *AvailabilityResult  `json:"last_availability,omitempty"`
	TSTs             []*tst.TST           `json:"tsts"`
	NextTSTID        int                  `json:"next_tst_id"`
	NextTicketSeq    int                  `json:"next_ticket_seq"`
	Snapshots        map[string]*Snapshot `json:"snapshots"`
	LastCommitted    string               `json:"last_committed,omitempty"`
	Queues           map[string][]string  `json:"queues"`
	ActiveQueue      string               `json:"active_queue,omitempty"`
	QueuePos         int                  `json:"queue_pos"`
}

// NewSession は初期状態のSessionを作成する
func NewSession() *Session {
	return &Session{
		NextTSTID:     1,
		NextTicketSeq: 1,
		Snapshots:     map[string]*Snapshot{},
		Queues:        map[string][]string{},
	}
}

// ensurePNR は最初の変更系コマンドでPNRを遅延作成する
func (s *Session) ensurePNR() *pnr.PNR {
	if s.ActivePNR == nil {
		s.ActivePNR = pnr.New()
	}
	return s.ActivePNR
}

// liveTST は現在有効なTSTを返す（高々1つ）
func (s *Session) liveTST() *tst.TST {
	for i := len(s.TSTs) - 1; i >= 0; i-- {
		if s.TSTs[i].Live() {
			return s.TSTs[i]
		}
	}
	return nil
}

// tstByID はIDでTSTを引く
func (s *Session) tstByID(id int) *tst.TST {
	for _, t := range s.TSTs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// currentLocator はアクティブPNRまたは直近コミットのロケータを返す
func (s *Session) currentLocator() string {
	if s.ActivePNR != nil && s.ActivePNR.RecordLocator != "" {
		return s.ActivePNR.RecordLocator
	}
	return s.LastCommitted
}

// takeSnapshot は現在のPNRとTSTを凍結してロケータに紐付ける
func (s *Session) takeSnapshot(locator string) {
	snap := &Snapshot{PNR: s.ActivePNR.Clone()}
	for _, t := range s.TSTs {
		snap.TSTs = append(snap.TSTs, t.Clone())
	}
	s.Snapshots[locator] = snap
	s.LastCommitted = locator
}

// restoreSnapshot はスナップショットの複製を現在状態に書き戻す
func (s *Session) restoreSnapshot(snap *Snapshot) {
	s.ActivePNR = snap.PNR.Clone()
	s.TSTs = nil
	for _, t := range snap.TSTs {
		s.TSTs = append(s.TSTs, t.Clone())
	}
}
