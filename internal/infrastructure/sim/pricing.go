package sim

import (
	"fmt"
	"math"

	"github.com/sanosuguru/go-pnr-workstation/internal/domain/pnr"
	"github.com/sanosuguru/go-pnr-workstation/internal/domain/tst"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/seedrand"
)

// Mode は運賃計算コマンドの種別
// 計算式は共通で、副作用（TST作成・クラス変更）だけが異なる
type Mode string

const (
	ModePrice   Mode = "FXP"
	ModeQuote   Mode = "FXX"
	ModeRebook  Mode = "FXR"
	ModeBestBuy Mode = "FXB"
)

// 通貨は固定
const Currency = "EUR"

// 往復判定時の固定サーチャージ
const roundTripSurcharge = 30.00

// 搭乗者種別ごとの運賃乗数
const (
	MultiplierADT = 1.0
	MultiplierCHD = 0.75
	MultiplierINF = 0.10
)

// 税目コード（ゾーンペアから導出）
var taxCodes = []string{"FR", "QX", "SE", "XT"}

var taxBase = map[string]float64{
	"FR": 14.0,
	"QX": 9.5,
	"SE": 6.0,
	"XT": 21.0,
}

// 予約クラスの運賃乗数
// rebookLadderの並びで単調減少になっている
var classMultiplier = map[string]float64{
	"F": 3.00, "A": 2.60, "J": 2.40, "C": 2.20, "D": 2.00,
	"W": 1.80, "R": 1.60, "Z": 1.50, "I": 1.40,
	"Y": 1.00, "E": 0.95, "B": 0.92, "M": 0.85, "H": 0.80,
	"K": 0.75, "Q": 0.70, "V": 0.65, "L": 0.60, "T": 0.55,
	"N": 0.50, "S": 0.48, "X": 0.45,
}

// エコノミーの再ブッキング用クラスラダー（高い順）
var rebookLadder = []string{"Y", "B", "M", "H", "K", "Q", "V", "L", "T", "N", "S", "X"}

// PriceRequest は運賃計算の入力
type PriceRequest struct {
	Segments  []pnr.Segment
	PaxCounts tst.PaxCounts
	Mode      Mode
}

// FareResult は運賃計算の結果
type FareResult struct {
	BaseFare          float64
	Taxes             []tst.Tax
	Total             float64
	Currency          string
	FareBasis         []string
	SegmentFares      []float64
	ValidatingCarrier string
}

// Pricing は運賃計算コラボレータ
type Pricing interface {
	Price(req PriceRequest) FareResult
}

// SimPricing は決定的な運賃シミュレータ
type SimPricing struct{}

func (SimPricing) Price(req PriceRequest) FareResult {
	res := FareResult{Currency: Currency}
	if len(req.Segments) == 0 {
		return res
	}
	res.ValidatingCarrier = req.Segments[0].Carrier

	paxWeight := float64(req.PaxCounts.ADT)*MultiplierADT +
		float64(req.PaxCounts.CHD)*MultiplierCHD +
		float64(req.PaxCounts.INF)*MultiplierINF
	if paxWeight == 0 {
		paxWeight = MultiplierADT // 氏名未入力のPNRは大人1名として見積もる
	}

	roundTrip := hasReversedPair(req.Segments)

	var base float64
	for _, s := range req.Segments {
		fare := segmentFare(s)
		res.SegmentFares = append(res.SegmentFares, fare)
		res.FareBasis = append(res.FareBasis, fareBasis(s, roundTrip))
		base += fare
	}
	res.BaseFare = Round2(base * paxWeight)

	zoneFactor := 1.0 + 0.1*float64(zone(req.Segments[0].From)+zone(req.Segments[len(req.Segments)-1].To))
	var taxTotal float64
	for _, code := range taxCodes {
		amount := Round2(taxBase[code] * zoneFactor * paxWeight)
		res.Taxes = append(res.Taxes, tst.Tax{Code: code, Amount: amount})
		taxTotal += amount
	}

	total := res.BaseFare + taxTotal
	if roundTrip {
		total += roundTripSurcharge
	}
	res.Total = Round2(total)
	return res
}

// segmentFare は1セグメントの大人1名分の基礎運賃を返す
// シードにクラスを含めないことで、同一便は安いクラスほど必ず安くなる
func segmentFare(s pnr.Segment) float64 {
	rng := seedrand.New(fmt.Sprintf("FARE:%s%04d%s%s%s", s.Carrier, s.FlightNo, s.From, s.To, s.DateDDMMM))
	distance := 200 + rng.Next()*2800
	offset := rng.Next() * 40
	mult, ok := classMultiplier[s.Class]
	if !ok {
		mult = 1.0
	}
	return Round2(distance*0.12*mult + offset)
}

func fareBasis(s pnr.Segment, roundTrip bool) string {
	trip := "OW"
	if roundTrip {
		trip = "RT"
	}
	return s.Class + trip + s.Carrier
}

// zone は空港コードから決定的にゾーン番号（0-3）を導出する
func zone(iata string) int {
	rng := seedrand.New("ZONE:" + iata)
	return rng.Intn(4)
}

func hasReversedPair(segments []pnr.Segment) bool {
	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			if segments[i].From == segments[j].To && segments[i].To == segments[j].From {
				return true
			}
		}
	}
	return false
}

// CheaperClass はラダー上でsteps段安いクラスを返す
// ラダー外のクラスやラダーの末尾ではそのまま返す
func CheaperClass(class string, steps int) string {
	pos := -1
	for i, c := range rebookLadder {
		if c == class {
			pos = i
			break
		}
	}
	if pos == -1 {
		return class
	}
	pos += steps
	if pos >= len(rebookLadder) {
		pos = len(rebookLadder) - 1
	}
	return rebookLadder[pos]
}

// MaxRebookSteps はラダーの全長を返す（最も積極的な再ブッキング用）
func MaxRebookSteps() int {
	return len(rebookLadder)
}

// Round2 は小数第2位までの四捨五入（round half up）を行う
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
