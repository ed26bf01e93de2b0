package tst

import (
	"errors"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
)

// TSTドメインのエラー定義
var (
	ErrNoTST = errors.New("NO TST")
)

// Status はTST（運賃トランザクション）の状態
type Status string

const (
	StatusCreated       Status = "CREATED"
	StatusStored        Status = "STORED"
	StatusRepriced      Status = "REPRICED"
	StatusReadyToTicket Status = "READY TO TICKET"
	StatusValidated     Status = "VALIDATED"
	StatusTicketed      Status = "TICKETED"
	StatusVoid          Status = "VOID"
)

// PaxCounts は運賃計算対象の搭乗者内訳
type PaxCounts struct {
	ADT int `json:"adt"`
	CHD int `json:"chd"`
	INF int `json:"inf"`
}

// Total は内訳の合計人数を返す
func (c PaxCounts) Total() int {
	return c.ADT + c.CHD + c.INF
}

// Tax は税目コードと金額
type Tax struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// TST は運賃計算済みトランザクションを表す
// Segmentsは作成時点の要素番号、FrozenSegmentsはその時点の
// セグメント内容の凍結コピー
type TST struct {
	ID                int           `json:"id"`
	PaxCounts         PaxCounts     `json:"pax_counts"`
	Segments          []int         `json:"segments"`
	FrozenSegments    []pnr.Segment `json:"frozen_segments"`
	ValidatingCarrier string        `json:"validating_carrier"`
	FareBasis         []string      `json:"fare_basis"`
	BaseFare          float64       `json:"base_fare"`
	Taxes             []Tax         `json:"taxes"`
	Total             float64       `json:"total"`
	Currency          string        `json:"currency"`
	Status            Status        `json:"status"`
}

// Live は発券の対象になり得る状態かを返す
func (t *TST) Live() bool {
	return t != nil && t.Status != StatusVoid
}

// CoversSegment は指定要素番号のセグメントがこのTSTの対象かを返す
func (t *TST) CoversSegment(number int) bool {
	if t == nil {
		return false
	}
	for _, n := range t.Segments {
		if n == number {
			return true
		}
	}
	return false
}

// Clone はTSTの深いコピーを返す
func (t *TST) Clone() *TST {
	if t == nil {
		return nil
	}
	c := *t
	c.Segments = append([]int(nil), t.Segments...)
	c.FrozenSegments = append([]pnr.Segment(nil), t.FrozenSegments...)
	c.FareBasis = append([]string(nil), t.FareBasis...)
	c.Taxes = append([]Tax(nil), t.Taxes...)
	return &c
}
