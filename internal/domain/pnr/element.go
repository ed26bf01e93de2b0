package pnr

import (
	"sort"

	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/gdsdate"
)

// ElementKind は番号付き要素の種別
type ElementKind string

const (
	ElementPassenger       ElementKind = "PAX"
	ElementSegment         ElementKind = "SEG"
	ElementSSR             ElementKind = "SSR"
	ElementOSI             ElementKind = "OSI"
	ElementRemark          ElementKind = "RM"
	ElementOption          ElementKind = "OP"
	ElementTicketTimeLimit ElementKind = "TKTL"
	ElementFormOfPayment   ElementKind = "FP"
	ElementTicketFA        ElementKind = "FA"
	ElementTicketFB        ElementKind = "FB"
	ElementReceipt         ElementKind = "ITR"
	ElementContact         ElementKind = "AP"
	ElementEmail           ElementKind = "APE"
	ElementSignature       ElementKind = "RF"
	ElementLocator         ElementKind = "RLOC"
)

// Element はPNRの1要素への参照
// Numberが表示・取消で使われる番号、Indexが元リストへの添字
// （TKTL/FP/RF/RLOCのような単一要素はIndex=-1）
type Element struct {
	Kind   ElementKind
	Index  int
	Number int
}

// SegmentDisplayOrder は旅程の表示順（出発日昇順、同日は入力順）の
// Itineraryインデックス列を返す
func (p *PNR) SegmentDisplayOrder(year int) []int {
	type decorated struct {
		idx  int
		sort int64
	}
	dec := make([]decorated, len(p.Itinerary))
	for i, s := range p.Itinerary {
		key := int64(1<<62 - 1)
		if d, err := gdsdate.Parse(s.DateDDMMM, year); err == nil {
			key = d.Unix()
		}
		dec[i] = decorated{idx: i, sort: key}
	}
	sort.SliceStable(dec, func(a, b int) bool { return dec[a].sort < dec[b].sort })
	out := make([]int, len(dec))
	for i, d := range dec {
		out[i] = d.idx
	}
	return out
}

// BuildElements は番号付き要素列を再構築する
// 表示と番号指定取消（XE）の双方がこの列だけを参照する
func (p *PNR) BuildElements(year int) []Element {
	var elems []Element
	add := func(kind ElementKind, index int) {
		elems = append(elems, Element{Kind: kind, Index: index, Number: len(elems) + 1})
	}

	for i := range p.Passengers {
		add(ElementPassenger, i)
	}
	for _, i := range p.SegmentDisplayOrder(year) {
		add(ElementSegment, i)
	}
	for i := range p.SSRs {
		add(ElementSSR, i)
	}
	for i := range p.OSIs {
		add(ElementOSI, i)
	}
	for i := range p.Remarks {
		add(ElementRemark, i)
	}
	for i := range p.Options {
		add(ElementOption, i)
	}
	if p.TicketTimeLimit != "" {
		add(ElementTicketTimeLimit, -1)
	}
	if p.FormOfPayment != "" {
		add(ElementFormOfPayment, -1)
	}
	for i := range p.Tickets {
		add(ElementTicketFA, i)
		add(ElementTicketFB, i)
	}
	for i := range p.Receipts {
		add(ElementReceipt, i)
	}
	for i := range p.Contacts {
		add(ElementContact, i)
	}
	for i := range p.Emails {
		add(ElementEmail, i)
	}
	if p.Signature != "" {
		add(ElementSignature, -1)
	}
	if p.RecordLocator != "" {
		add(ElementLocator, -1)
	}
	return elems
}

// FindElement は番号から要素を引く
func FindElement(elems []Element, number int) (Element, bool) {
	for _, e := range elems {
		if e.Number == number {
			return e, true
		}
	}
	return Element{}, false
}

// SegmentDisplayNumber は指定Itineraryインデックスの要素番号を返す
// （見つからないときは0）
func SegmentDisplayNumber(elems []Element, itineraryIndex int) int {
	for _, e := range elems {
		if e.Kind == ElementSegment && e.Index == itineraryIndex {
			return e.Number
		}
	}
	return 0
}
