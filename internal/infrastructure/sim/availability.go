package sim

import (
	"fmt"
	"sort"

	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/seedrand"
)

// BookingClass は予約クラスごとの空席数
type BookingClass struct {
	Code  string `json:"code"`
	Seats int    `json:"seats"`
}

// Flight は空席照会結果の1便
type Flight struct {
	LineNo    int            `json:"line_no"`
	Carrier   string         `json:"carrier"`
	FlightNo  int            `json:"flight_no"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	DateDDMMM string         `json:"date_ddmmm"`
	Dow       string         `json:"dow"`
	DepTime   string         `json:"dep_time"`
	ArrTime   string         `json:"arr_time"`
	Classes   []BookingClass `json:"classes"`
}

// ClassFor はクラスコードに対応するエントリを返す
func (f Flight) ClassFor(code string) (BookingClass, bool) {
	for _, c := range f.Classes {
		if c.Code == code {
			return c, true
		}
	}
	return BookingClass{}, false
}

// AvailabilityQuery は空席照会の条件
type AvailabilityQuery struct {
	From      string
	To        string
	DateDDMMM string
	Dow       string
}

// Availability は空席照会コラボレータ
type Availability interface {
	SearchAvailability(q AvailabilityQuery) []Flight
}

// 表示上のクラス並び（プレミアムから順）
var ClassOrder = []string{
	"J", "C", "D", "Y", "E", "B", "M", "H", "K", "Q", "V",
	"L", "T", "N", "R", "S", "X", "W", "A", "F", "Z", "I",
}

// 空席生成に使う航空会社プール
var carrierPool = []string{"AH", "AF", "PC", "SV", "TK", "LH", "BA", "AZ"}

// SimAvailability は決定的な空席シミュレータ
// 同じ出発地・到着地・日付は常に同じ結果を返す
type SimAvailability struct{}

func (SimAvailability) SearchAvailability(q AvailabilityQuery) []Flight {
	rng := seedrand.New("AVL:" + q.From + q.To + q.DateDDMMM)

	pool := append([]string(nil), carrierPool...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	count := 8 + rng.Intn(5)
	flights := make([]Flight, 0, count)
	for i := 0; i < count; i++ {
		depMinutes := 5*60 + rng.Intn(204)*5 // 0500-2155
		durMinutes := 90 + rng.Intn(55)*5    // 1h30-6h
		arrMinutes := (depMinutes + durMinutes) % (24 * 60)

		flights = append(flights, Flight{
			Carrier:   pool[i%len(pool)],
			FlightNo:  100 + rng.Intn(9900),
			From:      q.From,
			To:        q.To,
			DateDDMMM: q.DateDDMMM,
			Dow:       q.Dow,
			DepTime:   hhmm(depMinutes),
			ArrTime:   hhmm(arrMinutes),
			Classes:   buildClasses(rng),
		})
	}

	// 出発時刻順（同時刻は生成順を維持）に並べて1から振り直す
	sort.SliceStable(flights, func(a, b int) bool {
		return flights[a].DepTime < flights[b].DepTime
	})
	for i := range flights {
		flights[i].LineNo = i + 1
	}
	return flights
}

// buildClasses はクラスごとの空席を生成する
// プレミアム寄りのバケットほど席数を厚くする
func buildClasses(rng *seedrand.Seeded) []BookingClass {
	classes := make([]BookingClass, len(ClassOrder))
	for i, code := range ClassOrder {
		var base int
		switch {
		case i < 3:
			base = 9
		case i < 7:
			base = 4
		case i < 10:
			base = 9
		case i < 14:
			base = 4
		default:
			base = 0
		}
		seats := base
		if base > 0 {
			seats = base - rng.Intn(3)
			if seats < 1 {
				seats = 1
			}
		}
		classes[i] = BookingClass{Code: code, Seats: seats}
	}
	return classes
}

func hhmm(minutes int) string {
	return fmt.Sprintf("%02d%02d", minutes/60, minutes%60)
}
