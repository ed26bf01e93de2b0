package application

import (
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/locations"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/sim"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/clock"
)

// Deps はエンジンが依存するコラボレータ一式
// Locations以外は未指定ならシミュレーション実装が使われる
type Deps struct {
	Clock        clock.Clock
	Availability sim.Availability
	Pricing      sim.Pricing
	Locations    locations.Locations
}

// Engine はコマンド処理の唯一の入口
// 状態は持たず、渡されたSessionだけを読み書きする
type Engine struct {
	deps Deps
}

func NewEngine(deps Deps) *Engine {
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Availability == nil {
		deps.Availability = sim.SimAvailability{}
	}
	if deps.Pricing == nil {
		deps.Pricing = sim.SimPricing{}
	}
	return &Engine{deps: deps}
}

// Process は1コマンドを処理してイベント列を返す
// コラボレータ内部のpanicは汎用フォーマットエラーに降格する
func (e *Engine) Process(s *Session, raw string) (out []Event) {
	defer func() {
		if r := recover(); r != nil {
			out = []Event{NewEvent("INVALID FORMAT")}
		}
	}()

	cmd := lex(raw)
	switch cmd.op {
	case opEmpty:
		return nil
	case opBanner:
		return []Event{NewEvent("AMADEUS SELLING PLATFORM"), NewEvent("TRAINING MODE")}
	case opDate:
		return e.handleDate()
	case opHelp:
		return e.handleHelp()
	case opHelpTopic:
		return e.handleHelpTopic(cmd.text)
	case opAvailability, opTimetable, opSchedule:
		return e.handleAvailability(s, cmd)
	case opSell:
		return e.handleSell(s, cmd)
	case opCancelElements:
		return e.handleCancel(s, cmd)
	case opName:
		return e.handleName(s, cmd)
	case opContact:
		return e.handleContact(s, cmd)
	case opEmail:
		return e.handleEmail(s, cmd)
	case opSignature:
		return e.handleSignature(s, cmd)
	case opRemark:
		return e.handleRemark(s, cmd)
	case opOSI:
		return e.handleOSI(s, cmd)
	case opSSR:
		return e.handleSSR(s, cmd)
	case opOption:
		return e.handleOption(s, cmd)
	case opTicketTimeLimit:
		return e.handleTicketTimeLimit(s, cmd)
	case opFormOfPayment:
		return e.handleFormOfPayment(s, cmd)
	case opCommit:
		return e.handleCommit(s)
	case opDisplay:
		return e.handleDisplay(s)
	case opIgnore:
		return e.handleIgnore(s)
	case opRetrieve:
		return e.handleRetrieve(s, cmd)
	case opCancelPNR:
		return e.handleCancelPNR(s)
	case opQueuePlace:
		return e.handleQueuePlace(s, cmd)
	case opQueueDisplay:
		return e.handleQueueDisplay(s, cmd)
	case opQueueEnter:
		return e.handleQueueEnter(s, cmd)
	case opQueueNext:
		return e.handleQueueNext(s)
	case opQueueRemove:
		return e.handleQueueRemove(s)
	case opQueueStop:
		return e.handleQueueStop(s)
	case opPrice:
		return e.handlePrice(s, cmd)
	case opFareOptions:
		return e.handleFareOptions(s)
	case opTSTDisplay:
		return e.handleTSTDisplay(s, cmd)
	case opFareNotes:
		return e.handleFareNotes(s, cmd)
	case opIssueTicket:
		return e.handleIssueTicket(s)
	case opVoidTicket:
		return e.handleVoidTicket(s, cmd)
	case opReceipt:
		return e.handleReceipt(s)
	case opDecode:
		return e.handleDecode(cmd)
	case opSearch:
		return e.handleSearch(cmd)
	default:
		return []Event{NewEvent("INVALID FORMAT")}
	}
}

// year は日付解釈の基準年を返す
func (e *Engine) year() int {
	return e.deps.Clock.Today().Year()
}
