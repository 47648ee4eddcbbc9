package inference

import (
	"strconv"
	"strings"
	"time"

	"github.com/typelens/typelens/typelens"
)

// The accepted date layouts, year-first before month-first so that compact
// 8-digit values resolve as YYYYMMDD when both orderings would be valid.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"01-02-2006",
	"01/02/2006",
	"01.02.2006",
	"01022006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"150405",
	"3:04:05 PM",
	"3:04 PM",
	"3:04:05 pm",
	"3:04 pm",
}

// Datetime values only accept 24-hour clocks after the separator.
var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

var boolWords = map[string]bool{
	"true":  true,
	"yes":   true,
	"false": false,
	"no":    false,
}

func (inf Inferrer) trim(s string) string {
	if inf.TrimSpace {
		return strings.TrimSpace(s)
	}
	return s
}

// intLike matches an optional sign followed by one or more digits. Leading
// zeros are allowed.
func intLike(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// floatLike matches an optional sign, digits and at most one decimal point,
// with at least one digit overall. Scientific notation is deliberately not
// matched, so "1.23e10" stays a plain string.
func floatLike(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits := 0
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

func boolLike(s string) bool {
	_, ok := boolWords[strings.ToLower(s)]
	return ok
}

func noneWord(s string) bool {
	return strings.EqualFold(s, "none") || strings.EqualFold(s, "null")
}

func dateLike(s string) bool {
	_, ok := parseDate(s)
	return ok
}

func timeLike(s string) bool {
	_, ok := parseTime(s)
	return ok
}

// datetimeLike matches a date segment and a 24-hour time segment joined by a
// literal 'T' or a single space. Date-only and time-only values don't match.
func datetimeLike(s string) bool {
	_, ok := parseDatetime(s)
	return ok
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDatetime(s string) (time.Time, bool) {
	sep := strings.IndexAny(s, "T ")
	if sep < 0 || sep+1 >= len(s) {
		return time.Time{}, false
	}
	d, ok := parseDate(s[:sep])
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		if c, err := time.Parse(layout, s[sep+1:]); err == nil {
			return time.Date(
				d.Year(), d.Month(), d.Day(),
				c.Hour(), c.Minute(), c.Second(),
				0, time.UTC,
			), true
		}
	}
	return time.Time{}, false
}

// IsIntLike reports whether the text matches the integer grammar.
func (inf Inferrer) IsIntLike(s string) bool {
	return intLike(inf.trim(s))
}

// IsFloatLike reports whether the text matches the float grammar. Every
// integer-like value also qualifies.
func (inf Inferrer) IsFloatLike(s string) bool {
	return floatLike(inf.trim(s))
}

// IsBoolLike reports whether the text is one of true, false, yes or no,
// case-insensitively. Numeric strings like "1" never qualify.
func (inf Inferrer) IsBoolLike(s string) bool {
	return boolLike(inf.trim(s))
}

// IsDateLike reports whether the text matches one of the accepted date
// layouts and denotes a real calendar date.
func (inf Inferrer) IsDateLike(s string) bool {
	return dateLike(inf.trim(s))
}

// IsTimeLike reports whether the text matches one of the accepted clock
// layouts, including 12-hour forms with an AM/PM suffix.
func (inf Inferrer) IsTimeLike(s string) bool {
	return timeLike(inf.trim(s))
}

// IsDatetimeLike reports whether the text is a date and a 24-hour time
// joined by 'T' or a space.
func (inf Inferrer) IsDatetimeLike(s string) bool {
	return datetimeLike(inf.trim(s))
}

// IsNoneLike reports whether the value is the absent value or the text
// "none" or "null", case-insensitively.
func (inf Inferrer) IsNoneLike(v typelens.Value) bool {
	switch v.Type {
	case typelens.None:
		return true
	case typelens.String:
		return noneWord(inf.trim(v.Str))
	default:
		return false
	}
}

// IsEmptyLike reports whether the value is a string that is empty after
// trimming. Non-string values are never empty-like.
func (inf Inferrer) IsEmptyLike(v typelens.Value) bool {
	return v.Type == typelens.String && inf.trim(v.Str) == ""
}

// IsNumericLike reports whether the value is numeric text, a native number,
// or a native boolean. Native booleans count as numeric on purpose, to stay
// behaviorally compatible with hosts where booleans are a numeric subtype.
func (inf Inferrer) IsNumericLike(v typelens.Value) bool {
	switch v.Type {
	case typelens.Integer, typelens.Float, typelens.Boolean:
		return true
	case typelens.String:
		s := inf.trim(v.Str)
		return intLike(s) || floatLike(s)
	default:
		return false
	}
}

// IsCategoryLike reports whether the value is non-numeric text. This is an
// axis orthogonal to full type identity: boolean words and none words are
// category-like even though they infer to BOOLEAN and NONE.
func (inf Inferrer) IsCategoryLike(v typelens.Value) bool {
	if v.Type != typelens.String {
		return false
	}
	return !inf.IsNumericLike(v)
}

// HasLeadingZero reports whether the value is numeric text whose digits,
// sign aside, start with '0'. The lone "0" counts.
func (inf Inferrer) HasLeadingZero(v typelens.Value) bool {
	if v.Type != typelens.String {
		return false
	}
	s := inf.trim(v.Str)
	if !intLike(s) && !floatLike(s) {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] == '0'
}

// ToInt parses integer-like text. The second return is false when the text
// doesn't match the integer grammar.
func (inf Inferrer) ToInt(s string) (int64, bool) {
	s = inf.trim(s)
	if !intLike(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToFloat parses float-like text.
func (inf Inferrer) ToFloat(s string) (float64, bool) {
	s = inf.trim(s)
	if !floatLike(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToBool maps true/yes to true and false/no to false, case-insensitively.
// Any other text, including "1" and "0", yields no value.
func (inf Inferrer) ToBool(s string) (bool, bool) {
	b, ok := boolWords[strings.ToLower(inf.trim(s))]
	return b, ok
}

// ToDate parses date-like text into a midnight UTC time.Time.
func (inf Inferrer) ToDate(s string) (time.Time, bool) {
	return parseDate(inf.trim(s))
}

// ToTime parses time-like text into a time.Time carrying the zero date.
func (inf Inferrer) ToTime(s string) (time.Time, bool) {
	t, ok := parseTime(inf.trim(s))
	if !ok {
		return time.Time{}, false
	}
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
}

// ToDatetime parses datetime-like text, accepting both the 'T' and the
// space separator.
func (inf Inferrer) ToDatetime(s string) (time.Time, bool) {
	return parseDatetime(inf.trim(s))
}
