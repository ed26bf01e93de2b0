package pnr

import "strconv"

// PaxType は搭乗者の種別を表す
type PaxType string

const (
	PaxAdult  PaxType = "ADT"
	PaxChild  PaxType = "CHD"
	PaxInfant PaxType = "INF"
)

// Passenger は氏名要素を表す
// Titleは大人のみ、Ageは小児のみ意味を持つ
type Passenger struct {
	LastName  string  `json:"last_name"`
	FirstName string  `json:"first_name"`
	Type      PaxType `json:"type"`
	Title     string  `json:"title,omitempty"`
	Age       int     `json:"age,omitempty"`
	// InfantParent は幼児が紐付く大人のPassengersインデックス（未紐付けは-1）
	InfantParent int `json:"infant_parent"`
}

// Display は氏名要素の表示文字列を返す
func (p Passenger) Display() string {
	name := p.LastName + "/" + p.FirstName
	switch p.Type {
	case PaxChild:
		if p.Age > 0 {
			return name + " (CHD/" + strconv.Itoa(p.Age) + ")"
		}
		return name + " (CHD)"
	case PaxInfant:
		return name + " (INF)"
	default:
		if p.Title != "" {
			return name + " " + p.Title
		}
		return name
	}
}

// SegmentStatus は旅程セグメントの状態コード
type SegmentStatus string

const (
	// SegmentHeld は有効な予約済みセグメント
	SegmentHeld SegmentStatus = "HK"
	// SegmentCancelled はXEで取り消されたセグメント
	SegmentCancelled SegmentStatus = "XX"
	// SegmentCancelledByCarrier は航空会社都合の取り消し
	SegmentCancelledByCarrier SegmentStatus = "HX"
)

// Active は販売可能・発券対象として有効かを返す
func (s SegmentStatus) Active() bool {
	return s == SegmentHeld
}

// Segment は旅程セグメントを表す
type Segment struct {
	Carrier   string        `json:"carrier"`
	FlightNo  int           `json:"flight_no"`
	Class     string        `json:"class"`
	DateDDMMM string        `json:"date_ddmmm"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	DepTime   string        `json:"dep_time"`
	ArrTime   string        `json:"arr_time"`
	Status    SegmentStatus `json:"status"`
	PaxCount  int           `json:"pax_count"`
}

// SSR は特別サービスリクエスト要素
type SSR struct {
	Code    string `json:"code"`
	Carrier string `json:"carrier"`
	Text    string `json:"text"`
}

// OSI はその他サービス情報要素
type OSI struct {
	Carrier string `json:"carrier"`
	Text    string `json:"text"`
}

// Option はOP要素（リマインダー）
type Option struct {
	DateDDMMM string `json:"date_ddmmm,omitempty"`
	Text      string `json:"text"`
}

// TicketStatus は航空券の状態
type TicketStatus string

const (
	TicketIssued TicketStatus = "ISSUED"
	TicketVoid   TicketStatus = "VOID"
)

// Ticket は発券済み航空券を表す
type Ticket struct {
	Number   string       `json:"number"`
	TSTID    int          `json:"tst_id"`
	Status   TicketStatus `json:"status"`
	IssuedAt string       `json:"issued_at"`
	VoidedAt string       `json:"voided_at,omitempty"`
}

// Receipt は旅程受領書（ITR）を表す
type Receipt struct {
	TicketNumber  string   `json:"ticket_number"`
	PassengerName string   `json:"passenger_name"`
	Segments      []string `json:"segments"`
	Email         string   `json:"email"`
}

// Status はPNRのライフサイクル状態
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusRecorded Status = "RECORDED"
)

// PNR は予約記録の全要素を保持する
// 要素の番号付けはここでは行わず、BuildElementsが都度導出する
type PNR struct {
	Passengers      []Passenger `json:"passengers"`
	Itinerary       []Segment   `json:"itinerary"`
	Contacts        []string    `json:"contacts"`
	Emails          []string    `json:"emails"`
	SSRs            []SSR       `json:"ssrs"`
	OSIs            []OSI       `json:"osis"`
	Remarks         []string    `json:"remarks"`
	Options         []Option    `json:"options"`
	TicketTimeLimit string      `json:"ticket_time_limit,omitempty"`
	FormOfPayment   string      `json:"form_of_payment,omitempty"`
	Tickets         []Ticket    `json:"tickets"`
	Receipts        []Receipt   `json:"receipts"`
	Signature       string      `json:"signature,omitempty"`
	RecordLocator   string      `json:"record_locator,omitempty"`
	Status          Status      `json:"status"`
	PendingCancel   bool        `json:"pending_cancel"`
}

// New は空のPNRを作成する
func New() *PNR {
	return &PNR{Status: StatusActive}
}

// AdultCount は大人の人数を返す
func (p *PNR) AdultCount() int {
	var n int
	for _, pax := range p.Passengers {
		if pax.Type == PaxAdult {
			n++
		}
	}
	return n
}

// ActiveSegmentIndexes は有効なセグメントのItineraryインデックス一覧を返す
func (p *PNR) ActiveSegmentIndexes() []int {
	var idx []int
	for i, s := range p.Itinerary {
		if s.Status.Active() {
			idx = append(idx, i)
		}
	}
	return idx
}

// HasActiveSegment は有効なセグメントが1つ以上あるかを返す
func (p *PNR) HasActiveSegment() bool {
	return len(p.ActiveSegmentIndexes()) > 0
}

// InfantLinkedTo は指定インデックスの大人に幼児が紐付いているかを返す
func (p *PNR) InfantLinkedTo(adultIndex int) bool {
	for _, pax := range p.Passengers {
		if pax.Type == PaxInfant && pax.InfantParent == adultIndex {
			return true
		}
	}
	return false
}

// LastOpenTicket は最後に発券されたVOIDでない航空券を返す
func (p *PNR) LastOpenTicket() *Ticket {
	for i := len(p.Tickets) - 1; i >= 0; i-- {
		if p.Tickets[i].Status != TicketVoid {
			return &p.Tickets[i]
		}
	}
	return nil
}

// OpenTicketForTST は指定TSTに紐付くVOIDでない航空券を返す
func (p *PNR) OpenTicketForTST(tstID int) *Ticket {
	for i := range p.Tickets {
		if p.Tickets[i].TSTID == tstID && p.Tickets[i].Status != TicketVoid {
			return &p.Tickets[i]
		}
	}
	return nil
}

// PrimaryPassengerName は筆頭搭乗者の表示名を返す
func (p *PNR) PrimaryPassengerName() string {
	if len(p.Passengers) == 0 {
		return ""
	}
	return p.Passengers[0].Display()
}
