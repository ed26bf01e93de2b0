package application

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/sim"
)

// opcode はコマンド種別
// ディスパッチは順序依存の前方一致連鎖ではなく、
// 字句解析1パスで閉じたタグ付き表現に落としてから行う
type opcode int

const (
	opInvalid opcode = iota
	opEmpty
	opBanner
	opHelp
	opHelpTopic
	opDate
	opAvailability
	opTimetable
	opSchedule
	opSell
	opCancelElements
	opName
	opContact
	opEmail
	opSignature
	opRemark
	opOSI
	opSSR
	opOption
	opTicketTimeLimit
	opFormOfPayment
	opCommit
	opDisplay
	opIgnore
	opRetrieve
	opCancelPNR
	opQueuePlace
	opQueueDisplay
	opQueueEnter
	opQueueNext
	opQueueRemove
	opQueueStop
	opPrice
	opFareOptions
	opTSTDisplay
	opFareNotes
	opIssueTicket
	opVoidTicket
	opReceipt
	opDecode
	opSearch
)

// command は字句解析済みのコマンド1件
// opに応じて使われるフィールドが決まる
type command struct {
	op opcode

	date    string // DDMMM（妥当性検証はハンドラ側）
	from    string
	to      string
	carrier string

	line  int // SSの行番号
	class string
	pax   int

	all       bool // XEALL
	rangeFrom int
	rangeTo   int

	names []pnr.Passenger

	text    string // 自由テキスト（AP/RM/RF/DAN/ヘルプトピックなど）
	code    string // SSRコード・IATAコード
	number  int    // TQTのID / FQNのインデックス（0は未指定）
	ticket  string
	locator string
	queue   string
	mode    sim.Mode
}

// String はメトリクスラベル用の短い種別名を返す
func (o opcode) String() string {
	switch o {
	case opEmpty:
		return "EMPTY"
	case opBanner:
		return "BANNER"
	case opHelp, opHelpTopic:
		return "HELP"
	case opDate:
		return "JD"
	case opAvailability:
		return "AN"
	case opTimetable:
		return "TN"
	case opSchedule:
		return "SN"
	case opSell:
		return "SS"
	case opCancelElements:
		return "XE"
	case opName:
		return "NM"
	case opContact:
		return "AP"
	case opEmail:
		return "APE"
	case opSignature:
		return "RF"
	case opRemark:
		return "RM"
	case opOSI:
		return "OSI"
	case opSSR:
		return "SSR"
	case opOption:
		return "OP"
	case opTicketTimeLimit:
		return "TKTL"
	case opFormOfPayment:
		return "FP"
	case opCommit:
		return "ER"
	case opDisplay:
		return "RT"
	case opIgnore:
		return "IG"
	case opRetrieve:
		return "IR"
	case opCancelPNR:
		return "XI"
	case opQueuePlace:
		return "QP"
	case opQueueDisplay:
		return "QD"
	case opQueueEnter:
		return "QE"
	case opQueueNext:
		return "QN"
	case opQueueRemove:
		return "QR"
	case opQueueStop:
		return "QS"
	case opPrice:
		return "FX"
	case opFareOptions:
		return "FXL"
	case opTSTDisplay:
		return "TQT"
	case opFareNotes:
		return "FQN"
	case opIssueTicket:
		return "ET"
	case opVoidTicket:
		return "VOID"
	case opReceipt:
		return "ITR"
	case opDecode:
		return "DAC"
	case opSearch:
		return "DAN"
	default:
		return "INVALID"
	}
}

var (
	availDateFirstRe = regexp.MustCompile(`^(AN|TN|SN)(\d{1,2}[A-Z]{3})([A-Z]{3})([A-Z]{3})(?:/([A-Z0-9]{2}))?$`)
	availPairFirstRe = regexp.MustCompile(`^(AN|TN|SN)([A-Z]{3})([A-Z]{3})/(\d{1,2}[A-Z]{3})(?:/([A-Z0-9]{2}))?$`)
	sellRe           = regexp.MustCompile(`^SS(\d{1,2})([A-Z])(\d{0,2})$`)
	cancelOneRe      = regexp.MustCompile(`^XE(\d{1,3})$`)
	cancelRangeRe    = regexp.MustCompile(`^XE(\d{1,3})-(\d{1,3})$`)
	nameChildRe      = regexp.MustCompile(`^NM1([A-Z]+)/([A-Z]+)\s*\(CHD(?:/(\d{1,2}))?\)$`)
	nameInfantRe     = regexp.MustCompile(`^NM1([A-Z]+)/([A-Z]+)\s*\(INF\)$`)
	nameEntryRe      = regexp.MustCompile(`^1([A-Z]+)/([A-Z]+)$`)
	emailRe          = regexp.MustCompile(`^APE-([A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,})$`)
	tktlRe           = regexp.MustCompile(`^TKTL/?(\d{1,2}[A-Z]{3})$`)
	ssrRe            = regexp.MustCompile(`^SSR ([A-Z]{3,4}) ([A-Z0-9]{2}) (.+)$`)
	osiRe            = regexp.MustCompile(`^OSI ([A-Z0-9]{2}) (.+)$`)
	optionDatedRe    = regexp.MustCompile(`^OP(\d{1,2}[A-Z]{3})/(.+)$`)
	optionPlainRe    = regexp.MustCompile(`^OP/(.+)$`)
	retrieveRe       = regexp.MustCompile(`^IR(?:\s*([A-Z]{6}))?$`)
	queueRe          = regexp.MustCompile(`^(QP|QD|QE)/([A-Z0-9]+)$`)
	tstDisplayRe     = regexp.MustCompile(`^TQT(\d+)?$`)
	fareNotesRe      = regexp.MustCompile(`^FQN(\d+)?$`)
	voidRe           = regexp.MustCompile(`^VOID(?:\s+(\d{3}-\d{10}))?$`)
	decodeRe         = regexp.MustCompile(`^DAC\s*([A-Z]{3})$`)
	fareOptionsRe    = regexp.MustCompile(`^FXL(?:/.*)?$`)
)

// lex は1行を閉じたコマンド表現に変換する
// 構造的に解釈できない入力はopInvalidになる
func lex(raw string) command {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if c == "" {
		return command{op: opEmpty}
	}

	switch c {
	case "AN":
		return command{op: opBanner}
	case "JD":
		return command{op: opDate}
	case "HELP", "HE":
		return command{op: opHelp}
	case "ER":
		return command{op: opCommit}
	case "RT":
		return command{op: opDisplay}
	case "IG":
		return command{op: opIgnore}
	case "XI":
		return command{op: opCancelPNR}
	case "QN":
		return command{op: opQueueNext}
	case "QR":
		return command{op: opQueueRemove}
	case "QS":
		return command{op: opQueueStop}
	case "FXP":
		return command{op: opPrice, mode: sim.ModePrice}
	case "FXX":
		return command{op: opPrice, mode: sim.ModeQuote}
	case "FXR":
		return command{op: opPrice, mode: sim.ModeRebook}
	case "FXB":
		return command{op: opPrice, mode: sim.ModeBestBuy}
	case "ET", "TTP":
		return command{op: opIssueTicket}
	case "ITR-EML":
		return command{op: opReceipt}
	case "XEALL":
		return command{op: opCancelElements, all: true}
	}

	if strings.HasPrefix(c, "HE ") {
		return command{op: opHelpTopic, text: strings.TrimSpace(c[3:])}
	}

	if m := availDateFirstRe.FindStringSubmatch(c); m != nil {
		return command{op: availOp(m[1]), date: m[2], from: m[3], to: m[4], carrier: m[5]}
	}
	if m := availPairFirstRe.FindStringSubmatch(c); m != nil {
		return command{op: availOp(m[1]), from: m[2], to: m[3], date: m[4], carrier: m[5]}
	}

	if m := sellRe.FindStringSubmatch(c); m != nil {
		line, _ := strconv.Atoi(m[1])
		pax := 1
		if m[3] != "" {
			pax, _ = strconv.Atoi(m[3])
		}
		return command{op: opSell, line: line, class: m[2], pax: pax}
	}

	if m := cancelOneRe.FindStringSubmatch(c); m != nil {
		n, _ := strconv.Atoi(m[1])
		return command{op: opCancelElements, rangeFrom: n, rangeTo: n}
	}
	if m := cancelRangeRe.FindStringSubmatch(c); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a > b {
			a, b = b, a
		}
		return command{op: opCancelElements, rangeFrom: a, rangeTo: b}
	}

	if strings.HasPrefix(c, "NM") {
		return lexName(c)
	}

	if m := emailRe.FindStringSubmatch(c); m != nil {
		return command{op: opEmail, text: m[1]}
	}
	if strings.HasPrefix(c, "APE") {
		return command{op: opInvalid}
	}
	if strings.HasPrefix(c, "AP") {
		rest := strings.TrimSpace(c[2:])
		if rest == "" {
			return command{op: opInvalid}
		}
		return command{op: opContact, text: rest}
	}

	if strings.HasPrefix(c, "RF") {
		rest := strings.TrimSpace(c[2:])
		if rest == "" || strings.HasPrefix(rest, "+") {
			return command{op: opInvalid}
		}
		return command{op: opSignature, text: rest}
	}

	if strings.HasPrefix(c, "RM") {
		rest := strings.TrimSpace(c[2:])
		if rest == "" {
			return command{op: opInvalid}
		}
		return command{op: opRemark, text: rest}
	}

	if m := ssrRe.FindStringSubmatch(c); m != nil {
		return command{op: opSSR, code: m[1], carrier: m[2], text: m[3]}
	}
	if m := osiRe.FindStringSubmatch(c); m != nil {
		return command{op: opOSI, carrier: m[1], text: m[2]}
	}
	if m := optionDatedRe.FindStringSubmatch(c); m != nil {
		return command{op: opOption, date: m[1], text: strings.TrimSpace(m[2])}
	}
	if m := optionPlainRe.FindStringSubmatch(c); m != nil {
		return command{op: opOption, text: strings.TrimSpace(m[1])}
	}

	if m := tktlRe.FindStringSubmatch(c); m != nil {
		return command{op: opTicketTimeLimit, date: m[1]}
	}

	if strings.HasPrefix(c, "FP") {
		rest := strings.TrimSpace(c[2:])
		if rest == "" {
			return command{op: opInvalid}
		}
		return command{op: opFormOfPayment, text: rest}
	}

	if m := retrieveRe.FindStringSubmatch(c); m != nil {
		return command{op: opRetrieve, locator: m[1]}
	}

	if m := queueRe.FindStringSubmatch(c); m != nil {
		cmd := command{queue: m[2]}
		switch m[1] {
		case "QP":
			cmd.op = opQueuePlace
		case "QD":
			cmd.op = opQueueDisplay
		case "QE":
			cmd.op = opQueueEnter
		}
		return cmd
	}

	if fareOptionsRe.MatchString(c) {
		return command{op: opFareOptions}
	}
	if m := tstDisplayRe.FindStringSubmatch(c); m != nil {
		cmd := command{op: opTSTDisplay}
		if m[1] != "" {
			cmd.number, _ = strconv.Atoi(m[1])
		}
		return cmd
	}
	if m := fareNotesRe.FindStringSubmatch(c); m != nil {
		cmd := command{op: opFareNotes}
		if m[1] != "" {
			cmd.number, _ = strconv.Atoi(m[1])
		}
		return cmd
	}

	if m := voidRe.FindStringSubmatch(c); m != nil {
		return command{op: opVoidTicket, ticket: m[1]}
	}

	if strings.HasPrefix(c, "DAC") {
		if m := decodeRe.FindStringSubmatch(c); m != nil {
			return command{op: opDecode, code: m[1]}
		}
		return command{op: opInvalid}
	}
	if strings.HasPrefix(c, "DAN") {
		return command{op: opSearch, text: strings.TrimSpace(strings.TrimSpace(raw)[3:])}
	}

	return command{op: opInvalid}
}

func availOp(keyword string) opcode {
	switch keyword {
	case "TN":
		return opTimetable
	case "SN":
		return opSchedule
	default:
		return opAvailability
	}
}

// lexName は氏名コマンドを解析する
// 小児・幼児は単独エントリ、大人は「1姓/名 [MR|MRS]」の繰り返し
// 全エントリを検証してから返す（途中失敗での部分適用を避ける）
func lexName(c string) command {
	if m := nameChildRe.FindStringSubmatch(c); m != nil {
		age := 0
		if m[3] != "" {
			age, _ = strconv.Atoi(m[3])
		}
		return command{op: opName, names: []pnr.Passenger{{
			LastName: m[1], FirstName: m[2], Type: pnr.PaxChild, Age: age, InfantParent: -1,
		}}}
	}
	if m := nameInfantRe.FindStringSubmatch(c); m != nil {
		return command{op: opName, names: []pnr.Passenger{{
			LastName: m[1], FirstName: m[2], Type: pnr.PaxInfant, InfantParent: -1,
		}}}
	}

	tokens := strings.Fields(c[2:])
	if len(tokens) == 0 {
		return command{op: opInvalid}
	}

	var names []pnr.Passenger
	for i := 0; i < len(tokens); i++ {
		m := nameEntryRe.FindStringSubmatch(tokens[i])
		if m == nil {
			return command{op: opInvalid}
		}
		p := pnr.Passenger{LastName: m[1], FirstName: m[2], Type: pnr.PaxAdult, InfantParent: -1}
		if i+1 < len(tokens) && (tokens[i+1] == "MR" || tokens[i+1] == "MRS") {
			p.Title = tokens[i+1]
			i++
		}
		names = append(names, p)
	}
	return command{op: opName, names: names}
}
