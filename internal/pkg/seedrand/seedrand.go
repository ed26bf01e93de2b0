package seedrand

import "hash/fnv"

// Source は [0,1) の擬似乱数列を生成する
// エンジン内の「ランダム」は全てこのインターフェース経由で取得し、
// 同一シードから常に同一の列が再現されることを保証する
type Source interface {
	// Next は [0,1) の次の値を返す
	Next() float64
}

// Seeded は文字列シードから初期化される線形合同法のSource実装
// 同じシード文字列は常に同じ列を生成する
type Seeded struct {
	state uint32
}

// New は任意の文字列をシードとするSourceを作成する
func New(seed string) *Seeded {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return &Seeded{state: h.Sum32()}
}

// NewNumeric は数値シードから直接Sourceを作成する
func NewNumeric(seed uint32) *Seeded {
	return &Seeded{state: seed}
}

func (s *Seeded) Next() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / 4294967296
}

// Intn は [0,n) の整数を返す。nが0以下のときは0を返す
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Shuffle はFisher-Yatesでn要素を並べ替える
func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}
