package application

import (
	"errors"
	"strings"
)

var (
	errNoLocations  = errors.New("LOCATION PROVIDER NOT CONFIGURED")
	errHelpNotFound = errors.New("HELP NOT FOUND")
)

// handleDate はJD: 基準クロックの今日の日付表示
func (e *Engine) handleDate() []Event {
	text := strings.ToUpper(e.deps.Clock.Today().Format("Mon Jan 02 2006"))
	return []Event{NewEvent(text)}
}

// handleDecode はDAC: 3レターコードのデコード
// コラボレータ未設定は設定エラーとして報告する（黙ったフォールバックはしない）
func (e *Engine) handleDecode(cmd command) []Event {
	if e.deps.Locations == nil {
		return fail(errNoLocations)
	}
	var out emitter
	out.emitAll(e.deps.Locations.DecodeIata(cmd.code))
	return out.events
}

// handleSearch はDAN: テキスト検索
func (e *Engine) handleSearch(cmd command) []Event {
	if e.deps.Locations == nil {
		return fail(errNoLocations)
	}
	var out emitter
	out.emitAll(e.deps.Locations.SearchByText(cmd.text))
	return out.events
}

var helpLines = []string{
	"AVAILABLE COMMANDS",
	"ANddMMMXXXYYY       AVAILABILITY (ex: AN26DECALGPAR)",
	"ANXXXYYY/ddMMM      AVAILABILITY (ex: ANALGPAR/26DEC)",
	"TN / SN             TIMETABLE / SCHEDULE",
	"SSnCn[pax]          SELL (ex: SS1Y1 / SS2M2 / SS1Y)",
	"XE1 / XE1-3 / XEALL CANCEL ELEMENTS",
	"NM                  NAME (MR/MRS optional, CHD/INF)",
	"AP / APE-           CONTACT / EMAIL",
	"SSR / OSI / RM / OP SERVICE AND REMARK ELEMENTS",
	"TKTL / FP           TICKETING TIME LIMIT / FORM OF PAYMENT",
	"RF                  SIGNATURE (RFMM)",
	"ER                  END PNR",
	"RT                  DISPLAY PNR (same as live)",
	"IG / IR / XI        IGNORE / RETRIEVE / CANCEL PNR",
	"QP/QD/QE/QN/QR/QS   QUEUES",
	"FXP/FXX/FXR/FXB     PRICING",
	"FXL / TQT / FQN     FARE OPTIONS / TST / FARE NOTES",
	"ET / TTP            ISSUE TICKET",
	"VOID / ITR-EML      VOID TICKET / SEND RECEIPT",
	"DAC XXX             DECODE IATA (ex: DAC ALG)",
	"DAN <TEXT>          ENCODE SEARCH (ex: DAN PARIS)",
	"JD                  TODAY",
}

// トピック別ヘルプ
var helpTopics = map[string][]string{
	"AN": {
		"ANddMMMXXXYYY       AVAILABILITY (ex: AN26DECALGPAR)",
		"ANXXXYYY/ddMMM      AVAILABILITY (ex: ANALGPAR/26DEC)",
		"ANXXXYYY/ddMMM/CC   FILTER BY CARRIER",
	},
	"TN": {"TNddMMMXXXYYY       TIMETABLE (ex: TN26DECALGPAR)"},
	"SN": {"SNddMMMXXXYYY       SCHEDULE (ex: SN26DECALGPAR)"},
	"SS": {"SSnCn[pax]          SELL FROM LAST AN (ex: SS1Y1)"},
	"XE": {
		"XEn                 CANCEL ELEMENT n",
		"XEn-m               CANCEL ELEMENT RANGE",
		"XEALL               CANCEL ITINERARY AND SERVICE ELEMENTS",
	},
	"NM": {
		"NM1LAST/FIRST MR    ADULT NAME",
		"NM1LAST/FIRST (CHD/7)  CHILD NAME",
		"NM1LAST/FIRST (INF) INFANT NAME",
	},
	"AP":   {"APnnnnnn            CONTACT", "APE-user@host       EMAIL CONTACT"},
	"RF":   {"RFxx                SIGNATURE (ex: RFMM)"},
	"RM":   {"RM free text        REMARK"},
	"SSR":  {"SSR CODE CC TEXT    SPECIAL SERVICE REQUEST"},
	"OSI":  {"OSI CC TEXT         OTHER SERVICE INFORMATION"},
	"OP":   {"OPddMMM/TEXT        OPTION REMINDER"},
	"TKTL": {"TKTL/ddMMM          TICKETING TIME LIMIT"},
	"FP":   {"FP CASH             FORM OF PAYMENT"},
	"ER":   {"ER                  END PNR (needs name, contact, RF)"},
	"RT":   {"RT                  DISPLAY PNR"},
	"IG":   {"IG                  IGNORE CHANGES SINCE LAST ER"},
	"IR":   {"IR[locator]         RETRIEVE PNR"},
	"XI":   {"XI                  CANCEL PNR (confirm with ER)"},
	"QP":   {"QP/queue            PLACE ON QUEUE"},
	"QD":   {"QD/queue            DISPLAY QUEUE"},
	"QE":   {"QE/queue            ENTER QUEUE MODE"},
	"FXP":  {"FXP                 PRICE AND STORE TST"},
	"FXX":  {"FXX                 QUOTE ONLY"},
	"FXR":  {"FXR                 REBOOK ONE STEP AND REPRICE"},
	"FXB":  {"FXB                 BEST BUY (REBOOK AND STORE)"},
	"FXL":  {"FXL                 LIST REBOOKING OPTIONS"},
	"TQT":  {"TQT[n]              DISPLAY TST"},
	"FQN":  {"FQN[n]              FARE NOTES"},
	"ET":   {"ET / TTP            ISSUE TICKET"},
	"VOID": {"VOID [number]       VOID TICKET"},
	"ITR":  {"ITR-EML             SEND ITINERARY RECEIPT"},
	"DAC":  {"DAC XXX             DECODE IATA"},
	"DAN":  {"DAN TEXT            SEARCH LOCATIONS"},
	"JD":   {"JD                  TODAY"},
}

func (e *Engine) handleHelp() []Event {
	var out emitter
	out.emitAll(helpLines)
	return out.events
}

func (e *Engine) handleHelpTopic(topic string) []Event {
	lines, ok := helpTopics[topic]
	if !ok {
		return fail(errHelpNotFound)
	}
	var out emitter
	out.emitAll(lines)
	return out.events
}
