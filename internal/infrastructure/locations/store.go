package locations

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Location は都市・空港マスタの1件
type Location struct {
	Iata    string `json:"iata"`
	Type    string `json:"type"`
	City    string `json:"city"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region"`
}

// Locations は地名デコード・エンコードのコラボレータ
type Locations interface {
	DecodeIata(code string) []string
	SearchByText(text string) []string
}

// 一度に返す検索結果の上限
const maxSearchResults = 25

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Store はシード済み地名マスタのインメモリ実装
// 検索結果はシード順を保つ
type Store struct {
	byIata map[string]Location
	order  []string
}

func NewStore() *Store {
	return &Store{byIata: map[string]Location{}}
}

// Seed はマスタを入れ替える
func (s *Store) Seed(locs []Location) int {
	s.byIata = make(map[string]Location, len(locs))
	s.order = s.order[:0]
	for _, loc := range locs {
		code := strings.ToUpper(strings.TrimSpace(loc.Iata))
		if code == "" {
			continue
		}
		loc.Iata = code
		if _, dup := s.byIata[code]; !dup {
			s.order = append(s.order, code)
		}
		s.byIata[code] = loc
	}
	return len(s.order)
}

// LoadFromFile はJSONファイルからマスタを読み込む
func (s *Store) LoadFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("地名マスタの読み込みに失敗しました: %w", err)
	}
	var locs []Location
	if err := json.Unmarshal(data, &locs); err != nil {
		return 0, fmt.Errorf("地名マスタの解析に失敗しました: %w", err)
	}
	return s.Seed(locs), nil
}

// DecodeIata は3レターコードの詳細表示行を返す
func (s *Store) DecodeIata(code string) []string {
	iata := strings.ToUpper(strings.TrimSpace(code))
	if !iataPattern.MatchString(iata) {
		return []string{"INVALID FORMAT"}
	}

	loc, ok := s.byIata[iata]
	if !ok {
		return []string{"NO MATCH"}
	}

	lines := []string{
		"DAC " + iata,
		"CODE TYPE CITY / COUNTRY",
		fmt.Sprintf("%s  %s   %s / %s", loc.Iata, locType(loc), loc.City, loc.Country),
		"NAME: " + loc.Name,
	}
	if loc.Region != "" {
		lines = append(lines, "REGION: "+loc.Region)
	}
	return lines
}

// SearchByText は部分一致検索の表示行を返す（最大25件）
func (s *Store) SearchByText(text string) []string {
	q := strings.ToUpper(strings.TrimSpace(text))
	if q == "" {
		return []string{"INVALID FORMAT"}
	}

	var hits []Location
	for _, code := range s.order {
		loc := s.byIata[code]
		hay := strings.ToUpper(strings.Join([]string{loc.Iata, loc.City, loc.Name, loc.Country, loc.Region}, " "))
		if strings.Contains(hay, q) {
			hits = append(hits, loc)
			if len(hits) >= maxSearchResults {
				break
			}
		}
	}

	if len(hits) == 0 {
		return []string{"DAN " + q, "NO MATCH"}
	}

	lines := []string{"DAN " + q, "CODE TYPE CITY - NAME / COUNTRY"}
	for _, loc := range hits {
		lines = append(lines, fmt.Sprintf("%s  %s   %s - %s / %s", loc.Iata, locType(loc), loc.City, loc.Name, loc.Country))
	}
	return lines
}

func locType(loc Location) string {
	if loc.Type == "" {
		return "A"
	}
	return loc.Type
}
