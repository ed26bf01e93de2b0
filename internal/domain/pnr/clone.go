package pnr

// Clone はPNRの深いコピーを返す
// スナップショット（ER時の保存、IG/IRでの復元）はこのコピーだけを使い、
// 元のPNRとメモリを一切共有しない
func (p *PNR) Clone() *PNR {
	if p == nil {
		return nil
	}
	c := *p
	c.Passengers = append([]Passenger(nil), p.Passengers...)
	c.Itinerary = append([]Segment(nil), p.Itinerary...)
	c.Contacts = append([]string(nil), p.Contacts...)
	c.Emails = append([]string(nil), p.Emails...)
	c.SSRs = append([]SSR(nil), p.SSRs...)
	c.OSIs = append([]OSI(nil), p.OSIs...)
	c.Remarks = append([]string(nil), p.Remarks...)
	c.Options = append([]Option(nil), p.Options...)
	c.Tickets = append([]Ticket(nil), p.Tickets...)
	c.Receipts = append([]Receipt(nil), p.Receipts...)
	for i := range c.Receipts {
		c.Receipts[i].Segments = append([]string(nil), p.Receipts[i].Segments...)
	}
	return &c
}
