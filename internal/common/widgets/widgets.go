// Package widgets berisi helper tampilan kecil yang dipakai banyak halaman.
package widgets

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StatTile satu kartu statistik di dashboard.
type StatTile struct {
	Label  string      `json:"label"`
	Value  interface{} `json:"value"`
	Change string      `json:"change,omitempty"`
}

// Percent part/total dalam persen dengan satu angka desimal; 0 bila total 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}

// Delta format perubahan bertanda, misal "+3" atau "-2"; "0" tanpa tanda.
func Delta(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Initials maksimal dua huruf awal dari nama, huruf besar. "?" bila kosong.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Contains pencarian teks case-insensitive; query kosong selalu cocok.
func Contains(haystack, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
}

// MatchesAny true bila salah satu field cocok dengan query.
func MatchesAny(query string, fields ...string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	for _, f := range fields {
		if Contains(f, query) {
			return true
		}
	}
	return false
}
