package gdsdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// GDSの日付表記（DDMMM、例: 26DEC）のパースとフォーマット
// 年は持たないため、パース時に基準年を外から与える

var ErrInvalidDate = errors.New("INVALID FORMAT")

var ddmmmRe = regexp.MustCompile(`^(\d{1,2})([A-Z]{3})$`)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// Parse はDDMMM表記を基準年の日付に変換する
// 31FEBのような存在しない日はエラーになる
func Parse(s string, year int) (time.Time, error) {
	m := ddmmmRe.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return time.Time{}, ErrInvalidDate
	}
	day, _ := strconv.Atoi(m[1])
	month, ok := months[m[2]]
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Format は日付をDDMMM表記にする
func Format(t time.Time) string {
	return fmt.Sprintf("%02d%s", t.Day(), strings.ToUpper(t.Format("Jan")))
}

// Weekday2 は2文字の曜日コード（SU/MO/...）を返す
func Weekday2(t time.Time) string {
	codes := [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}
	return codes[int(t.Weekday())]
}

// Valid はDDMMM表記として正しいかを返す
func Valid(s string, year int) bool {
	_, err := Parse(s, year)
	return err == nil
}
