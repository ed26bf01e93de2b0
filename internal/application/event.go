package application

// Kind はイベントの種別（表示か既知エラーか）
type Kind string

const (
	KindPrint Kind = "print"
	KindError Kind = "error"
)

// Event はコマンド処理が返す出力1行
type Event struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// 既知エラー文字列の集合
// テキストがこの集合に含まれるかどうかだけでKindが決まる
// （どの経路で生成されたかは分類に影響しない）
var knownErrors = map[string]struct{}{
	"INVALID FORMAT":                   {},
	"NO ACTIVE PNR":                    {},
	"NO ITINERARY":                     {},
	"NO AVAILABILITY":                  {},
	"NO SEATS":                         {},
	"NOT ENOUGH SEATS":                 {},
	"PNR NOT FOUND":                    {},
	"END PNR FIRST":                    {},
	"ELEMENT NOT FOUND":                {},
	"NOT ALLOWED":                      {},
	"NOT ALLOWED - TST PRESENT":        {},
	"NOT ALLOWED - TST SEGMENT":        {},
	"NOT ALLOWED - LAST SEGMENT":       {},
	"NOT ALLOWED - LAST ADT":           {},
	"NOT ALLOWED - INF ASSOCIATED":     {},
	"NOTHING TO CANCEL":                {},
	"FUNCTION NOT APPLICABLE":          {},
	"NO TST":                           {},
	"NO TICKET":                        {},
	"NO EMAIL ADDRESS":                 {},
	"TICKET ALREADY ISSUED":            {},
	"NO SEGMENTS":                      {},
	"QUEUE NOT FOUND":                  {},
	"NO ACTIVE QUEUE":                  {},
	"NO RECORDED PNR":                  {},
	"NO FORM OF PAYMENT":               {},
	"LOCATION PROVIDER NOT CONFIGURED": {},
	"HELP NOT FOUND":                   {},
}

// NewEvent はテキストを既知エラー集合と照合してイベントを作る
func NewEvent(text string) Event {
	if _, ok := knownErrors[text]; ok {
		return Event{Kind: KindError, Text: text}
	}
	return Event{Kind: KindPrint, Text: text}
}

// IsKnownError はテキストが既知エラー集合に含まれるかを返す
func IsKnownError(text string) bool {
	_, ok := knownErrors[text]
	return ok
}

// emitter はハンドラが出力行を積むためのコレクタ
type emitter struct {
	events []Event
}

func (e *emitter) emit(text string) {
	e.events = append(e.events, NewEvent(text))
}

func (e *emitter) emitAll(lines []string) {
	for _, line := range lines {
		e.emit(line)
	}
}

// fail は単一の終端エラーイベント列を返す
func fail(err error) []Event {
	return []Event{NewEvent(err.Error())}
}
