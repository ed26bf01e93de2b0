package clock

import "time"

// Clock は現在時刻の取得を抽象化する
// シミュレーションの決定性を保つため、エンジンは必ずこのインターフェース
// 経由で時刻を参照する
type Clock interface {
	// Now は現在時刻を返す
	Now() time.Time
	// Today はローカルタイムゾーンでの今日の0時を返す
	Today() time.Time
	// TodayUTC はUTCでの今日の0時を返す
	TodayUTC() time.Time
}

// System は実時刻を返すClock実装
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (System) TodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Fixed は固定時刻を返すClock実装（テスト・デモ用）
type Fixed struct {
	t time.Time
}

// NewFixed は指定時刻で固定されたClockを作成する
func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}

func (f Fixed) Today() time.Time {
	return time.Date(f.t.Year(), f.t.Month(), f.t.Day(), 0, 0, 0, 0, f.t.Location())
}

func (f Fixed) TodayUTC() time.Time {
	u := f.t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
