package pnr

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// レコードロケータの文字集合（I/Oは紛らわしいため除外）
const locatorAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// ContentLocator は予約内容から導出した6文字のレコードロケータを返す
// 同一内容のPNRは常に同じロケータになる（内容アドレッシング）
func (p *PNR) ContentLocator() string {
	var b strings.Builder
	for _, pax := range p.Passengers {
		fmt.Fprintf(&b, "NM:%s/%s/%s/%s/%d;", pax.LastName, pax.FirstName, pax.Type, pax.Title, pax.Age)
	}
	for _, s := range p.Itinerary {
		fmt.Fprintf(&b, "SEG:%s%04d%s%s%s%s;", s.Carrier, s.FlightNo, s.Class, s.DateDDMMM, s.From, s.To)
	}
	for _, c := range p.Contacts {
		fmt.Fprintf(&b, "AP:%s;", c)
	}
	fmt.Fprintf(&b, "RF:%s", p.Signature)

	h := fnv.New64a()
	h.Write([]byte(b.String()))
	sum := h.Sum64()

	out := make([]byte, 6)
	for i := range out {
		out[i] = locatorAlphabet[sum%uint64(len(locatorAlphabet))]
		sum /= uint64(len(locatorAlphabet))
	}
	return string(out)
}
