package dialog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fact extractors are pure, total functions: malformed input yields the zero
// value, never an error.

var (
	ageBareRe = regexp.MustCompile(`^\s*([1-9][0-9]?)\s*$`)
	// A 1-2 digit numeral followed by an age unit, optionally preceded by a
	// child qualifier: "ребёнку 8 лет", "8 лет", "5 годиков".
	ageUnitRe = regexp.MustCompile(`(?:реб[её]нку\s+)?([1-9][0-9]?)\s*(?:лет|год(?:а|ика|иков|ик)?)`)

	timeTokenRe = regexp.MustCompile(`\b([0-9]{1,2}):([0-9]{2})\b`)
	dotTokenRe  = regexp.MustCompile(`\b([0-9]{1,2})[./]([0-9]{2})\b`)
)

// NormalizeText trims, lowercases, collapses inner whitespace and strips
// trailing punctuation. Classification and command matching run on the
// normalized form.
func NormalizeText(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.Join(strings.Fields(t), " ")
	return strings.TrimRight(t, ".,!?;: ")
}

// ExtractPhone strips non-digits and accepts 11-digit numbers starting with
// the trunk prefix 8 (or country code 7), and bare 10-digit local numbers.
// Everything is normalized to +7XXXXXXXXXX. Any other digit count yields "".
func ExtractPhone(text string) string {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case len(d) == 11 && (d[0] == '8' || d[0] == '7'):
		return "+7" + d[1:]
	case len(d) == 10:
		return "+7" + d
	}
	return ""
}

// ExtractAge returns an age in [1,99] when the message is a bare 1-2 digit
// numeral, or contains a numeral followed by an age-unit word. 0 means no
// value.
func ExtractAge(text string) int {
	t := strings.ToLower(strings.TrimSpace(text))
	m := ageBareRe.FindStringSubmatch(t)
	if m == nil {
		m = ageUnitRe.FindStringSubmatch(t)
	}
	if m == nil {
		return 0
	}
	age, err := strconv.Atoi(m[1])
	if err != nil || age < 1 || age > 99 {
		return 0
	}
	return age
}

// RewriteRelativeDates replaces today/tomorrow/day-after-tomorrow tokens with
// absolute dd.mm dates, leaving any time token untouched. Non-matching text
// passes through unchanged. Longest token first so "послезавтра" is not eaten
// by "завтра".
func RewriteRelativeDates(text string, now time.Time) string {
	replacements := []struct {
		token string
		days  int
	}{
		{"послезавтра", 2},
		{"завтра", 1},
		{"сегодня", 0},
	}
	out := text
	lower := strings.ToLower(out)
	for _, r := range replacements {
		for {
			idx := strings.Index(lower, r.token)
			if idx < 0 {
				break
			}
			d := now.AddDate(0, 0, r.days)
			abs := fmt.Sprintf("%02d.%02d", d.Day(), int(d.Month()))
			out = out[:idx] + abs + out[idx+len(r.token):]
			lower = strings.ToLower(out)
		}
	}
	return out
}

var weekdayStems = []struct {
	stem string
	name string
}{
	{"понед", "Понедельник"},
	{"вторн", "Вторник"},
	{"сред", "Среда"},
	{"четвер", "Четверг"},
	{"пятниц", "Пятница"},
	{"суббот", "Суббота"},
	{"воскр", "Воскресенье"},
}

// DetectDay matches weekday name stems case-insensitively; first match wins.
// Returns "" if none found.
func DetectDay(text string) string {
	t := strings.ToLower(text)
	for _, wd := range weekdayStems {
		if strings.Contains(t, wd.stem) {
			return wd.name
		}
	}
	return ""
}

// ExtractDateTime pulls a dd.mm (or dd/mm) date token and an hh:mm (or hh.mm)
// time token out of a message. Dotted tokens are ambiguous between the two;
// a token is claimed as a date when it parses as a plausible calendar day and
// no date has been found yet, otherwise as a time.
func ExtractDateTime(text string) (date, clock string) {
	for _, m := range timeTokenRe.FindAllStringSubmatch(text, -1) {
		if clock == "" && plausibleClock(m[1], m[2]) {
			clock = fmt.Sprintf("%02d:%s", atoi(m[1]), m[2])
		}
	}
	for _, m := range dotTokenRe.FindAllStringSubmatch(text, -1) {
		if strings.Contains(m[0], ":") {
			continue
		}
		if date == "" && plausibleDate(m[1], m[2]) {
			date = fmt.Sprintf("%02d.%02d", atoi(m[1]), atoi(m[2]))
			continue
		}
		if clock == "" && plausibleClock(m[1], m[2]) {
			clock = fmt.Sprintf("%02d:%s", atoi(m[1]), m[2])
		}
	}
	return date, clock
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func plausibleDate(dd, mm string) bool {
	d, m := atoi(dd), atoi(mm)
	return d >= 1 && d <= 31 && m >= 1 && m <= 12
}

func plausibleClock(hh, mm string) bool {
	h, m := atoi(hh), atoi(mm)
	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

// Facts is the ephemeral per-message classification payload. It is never
// persisted; the router merges it into session slots under the slot
// invariants.
type Facts struct {
	Phone string
	Age   int
	Day   string
}

// ExtractFacts runs all extractors over the raw message.
func ExtractFacts(text string) Facts {
	return Facts{
		Phone: ExtractPhone(text),
		Age:   ExtractAge(text),
		Day:   DetectDay(text),
	}
}
