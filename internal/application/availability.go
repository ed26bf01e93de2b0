package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/sim"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/gdsdate"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/seedrand"
)

var errInvalidFormat = errors.New("INVALID FORMAT")

// 時刻表表示の1ページあたりの行数
const timetablePageSize = 10

// handleAvailability はAN/TN/SNの共通入口
func (e *Engine) handleAvailability(s *Session, cmd command) []Event {
	date, err := gdsdate.Parse(cmd.date, e.year())
	if err != nil {
		return fail(errInvalidFormat)
	}
	ddmmm := gdsdate.Format(date)
	dow := gdsdate.Weekday2(date)

	flights := e.deps.Availability.SearchAvailability(sim.AvailabilityQuery{
		From: cmd.from, To: cmd.to, DateDDMMM: ddmmm, Dow: dow,
	})
	if len(flights) == 0 {
		return fail(errors.New("NO AVAILABILITY"))
	}
	if cmd.carrier != "" {
		flights = filterByCarrier(flights, cmd.carrier)
	}

	var out emitter
	switch cmd.op {
	case opTimetable:
		out.emit(fmt.Sprintf("TN%s%s%s", ddmmm, cmd.from, cmd.to))
		out.emit(fmt.Sprintf("** AMADEUS TIMETABLE - TN ** %s", cmd.to))
		if len(flights) == 0 {
			out.emit("NO FLIGHTS")
			return out.events
		}
		renderTimetable(&out, flights)
	case opSchedule:
		out.emit(fmt.Sprintf("SN%s%s%s", ddmmm, cmd.from, cmd.to))
		out.emit(fmt.Sprintf("** AMADEUS SCHEDULE - SN ** %s", cmd.to))
		if len(flights) == 0 {
			out.emit("NO FLIGHTS")
			return out.events
		}
		for _, f := range flights {
			out.emit(scheduleLine(f))
		}
	default:
		out.emit(fmt.Sprintf("AN%s%s%s", ddmmm, cmd.from, cmd.to))
		out.emit(fmt.Sprintf("** AMADEUS AVAILABILITY - AN ** %s", cmd.to))
		s.LastAvailability = &AvailabilityResult{
			Query:   sim.AvailabilityQuery{From: cmd.from, To: cmd.to, DateDDMMM: ddmmm, Dow: dow},
			Flights: flights,
		}
		if len(flights) == 0 {
			out.emit("NO FLIGHTS")
			return out.events
		}
		for _, f := range flights {
			renderAvailabilityRow(&out, f)
		}
	}
	return out.events
}

// filterByCarrier は指定キャリアの行だけ残して番号を振り直す
func filterByCarrier(flights []sim.Flight, carrier string) []sim.Flight {
	var kept []sim.Flight
	for _, f := range flights {
		if f.Carrier == carrier {
			f.LineNo = len(kept) + 1
			kept = append(kept, f)
		}
	}
	return kept
}

// renderAvailabilityRow はクラストークンを8個ずつ折り返して表示する
func renderAvailabilityRow(out *emitter, f sim.Flight) {
	tokens := make([]string, len(f.Classes))
	for i, c := range f.Classes {
		tokens[i] = fmt.Sprintf("%s%d", c.Code, c.Seats)
	}

	first := tokens
	if len(first) > 8 {
		first = first[:8]
	}
	out.emit(fmt.Sprintf("%d  %-2s %04d  %-34s /%s %s",
		f.LineNo, f.Carrier, f.FlightNo, strings.Join(first, " "), f.From, f.To))

	for i := 8; i < len(tokens); i += 8 {
		end := i + 8
		if end > len(tokens) {
			end = len(tokens)
		}
		out.emit("     " + strings.Join(tokens[i:end], " "))
	}
}

func renderTimetable(out *emitter, flights []sim.Flight) {
	pages := (len(flights) + timetablePageSize - 1) / timetablePageSize
	for i, f := range flights {
		if i%timetablePageSize == 0 {
			out.emit(fmt.Sprintf("PAGE %d/%d", i/timetablePageSize+1, pages))
		}
		out.emit(fmt.Sprintf("%d  %-2s %04d  %s%s %s %s  %s",
			f.LineNo, f.Carrier, f.FlightNo, f.From, f.To, f.DepTime, f.ArrTime, operatingDays(f)))
	}
}

// operatingDays は便ごとの運航曜日パターンを決定的に導出する
func operatingDays(f sim.Flight) string {
	rng := seedrand.New(fmt.Sprintf("DAYS:%s%04d", f.Carrier, f.FlightNo))
	mask := 1 + rng.Intn(127)
	if mask == 127 {
		return "DAILY"
	}
	var b strings.Builder
	for d := 1; d <= 7; d++ {
		if mask&(1<<(d-1)) != 0 {
			fmt.Fprintf(&b, "%d", d)
		}
	}
	return b.String()
}

func scheduleLine(f sim.Flight) string {
	var open []string
	for _, c := range f.Classes {
		if c.Seats > 0 {
			open = append(open, c.Code)
		}
	}
	return fmt.Sprintf("%d  %-2s %04d  %s %s%s %s %s  %s",
		f.LineNo, f.Carrier, f.FlightNo, f.DateDDMMM, f.From, f.To, f.DepTime, f.ArrTime,
		strings.Join(open, " "))
}

// handleSell は直近のAN結果から行番号指定でセグメントを売る
func (e *Engine) handleSell(s *Session, cmd command) []Event {
	if s.LastAvailability == nil || len(s.LastAvailability.Flights) == 0 {
		return fail(errors.New("NO AVAILABILITY"))
	}
	if cmd.pax < 1 || cmd.pax > 9 {
		return fail(errInvalidFormat)
	}

	var flight *sim.Flight
	for i := range s.LastAvailability.Flights {
		if s.LastAvailability.Flights[i].LineNo == cmd.line {
			flight = &s.LastAvailability.Flights[i]
			break
		}
	}
	if flight == nil {
		return fail(errInvalidFormat)
	}
	cls, ok := flight.ClassFor(cmd.class)
	if !ok {
		return fail(errInvalidFormat)
	}
	if cls.Seats <= 0 {
		return fail(errors.New("NO SEATS"))
	}
	if cmd.pax > cls.Seats {
		return fail(errors.New("NOT ENOUGH SEATS"))
	}

	p := s.ensurePNR()
	p.Itinerary = append(p.Itinerary, pnr.Segment{
		Carrier:   flight.Carrier,
		FlightNo:  flight.FlightNo,
		Class:     cmd.class,
		DateDDMMM: flight.DateDDMMM,
		From:      flight.From,
		To:        flight.To,
		DepTime:   flight.DepTime,
		ArrTime:   flight.ArrTime,
		Status:    pnr.SegmentHeld,
		PaxCount:  cmd.pax,
	})

	var out emitter
	out.emit("OK")
	out.emitAll(e.renderLiveView(s))
	return out.events
}
