// Package numfmt classifies Excel number formats and converts numeric
// serials stored under date or time formats into raw cell values.
package numfmt

import (
	"strings"
	"unicode"
)

// Kind is the temporal meaning a number format gives a numeric cell.
type Kind int

const (
	// General formats leave the number a plain number.
	General Kind = iota
	// Date formats show only a calendar date.
	Date
	// DateTime formats show a date and a time of day.
	DateTime
	// Time formats show only a time of day.
	Time
	// Duration formats show elapsed time, e.g. [h]:mm:ss.
	Duration
)

func (k Kind) String() string {
	switch k {
	case Date:
		return "date"
	case DateTime:
		return "datetime"
	case Time:
		return "time"
	case Duration:
		return "duration"
	default:
		return "general"
	}
}

// builtinKinds maps the builtin number format ids that carry a temporal
// meaning. Ids 27-36 and 50-58 are the East Asian locale variants.
var builtinKinds = map[int]Kind{
	14: Date,
	15: Date,
	16: Date,
	17: Date,
	18: Time,
	19: Time,
	20: Time,
	21: Time,
	22: DateTime,
	27: Date,
	28: Date,
	29: Date,
	30: Date,
	31: Date,
	32: Time,
	33: Time,
	34: Time,
	35: Time,
	36: Date,
	45: Time,
	46: Duration,
	47: Time,
	50: Date,
	51: Date,
	52: Date,
	53: Date,
	54: Date,
	55: Date,
	56: Date,
	57: Date,
	58: Date,
}

// Builtin classifies a builtin number format id.
func Builtin(id int) Kind {
	return builtinKinds[id]
}

// Classify classifies a number format code. Only the first section of a
// multi-section code is considered.
func Classify(code string) Kind {
	section := firstSection(code)
	if section == "" || strings.EqualFold(strings.TrimSpace(section), "general") {
		return General
	}

	var hasDate, hasTime, hasMonth bool
	runes := []rune(section)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\', '_', '*':
			// The next character is a literal, padding or fill.
			i++
			continue
		case '"':
			for i++; i < len(runes) && runes[i] != '"'; i++ {
			}
			continue
		case '[':
			end := indexRune(runes[i:], ']')
			if end < 0 {
				return General
			}
			if isElapsed(string(runes[i+1 : i+end])) {
				return Duration
			}
			i += end
			continue
		}

		switch unicode.ToLower(r) {
		case 'y', 'd', 'b', 'g':
			hasDate = true
		case 'e':
			// "E+" and "E-" are scientific notation, not the era year.
			if i+1 < len(runes) && (runes[i+1] == '+' || runes[i+1] == '-') {
				i++
				continue
			}
			hasDate = true
		case 'h', 's':
			hasTime = true
		case 'm':
			hasMonth = true
		case 'a':
			if hasAMPM(runes[i:]) {
				hasTime = true
			}
		}
	}

	switch {
	case hasDate && hasTime:
		return DateTime
	case hasDate:
		return Date
	case hasTime:
		return Time
	case hasMonth:
		return Date
	default:
		return General
	}
}

func firstSection(code string) string {
	inQuote := false
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '"':
			inQuote = !inQuote
		case '\\':
			i++
		case ';':
			if !inQuote {
				return code[:i]
			}
		}
	}
	return code
}

// isElapsed reports whether a bracketed token is an elapsed-time marker
// such as [h], [mm] or [ss].
func isElapsed(token string) bool {
	if token == "" {
		return false
	}
	token = strings.ToLower(token)
	first := token[0]
	if first != 'h' && first != 'm' && first != 's' {
		return false
	}
	return strings.Count(token, string(first)) == len(token)
}

func hasAMPM(runes []rune) bool {
	s := strings.ToLower(string(runes))
	return strings.HasPrefix(s, "am/pm") || strings.HasPrefix(s, "a/p")
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}
