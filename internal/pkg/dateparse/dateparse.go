// Package dateparse interprets the loosely formatted date strings found in
// the spreadsheet exports: ISO timestamps from the form backend, slash or
// dot dates typed by members, and Indonesian locale strings such as
// "Kamis, 25 Juli 2024 pukul 19.30.25 WIB".
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// isoLayouts are tried first for strings containing a '-'.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// monthNames maps Indonesian and English month names and their common
// abbreviations to month numbers.
var monthNames = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maret": time.March,
	"april": time.April, "mei": time.May, "juni": time.June,
	"juli": time.July, "agustus": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "desember": time.December,

	"january": time.January, "february": time.February, "march": time.March,
	"may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "october": time.October, "december": time.December,

	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July,
	"agu": time.August, "ags": time.August, "agt": time.August,
	"aug": time.August, "sep": time.September, "okt": time.October,
	"oct": time.October, "nov": time.November, "des": time.December,
	"dec": time.December,
}

var (
	tokenSplit  = regexp.MustCompile(`[/\-.\s]+`)
	colonTime   = regexp.MustCompile(`(?:^|\D)(\d{1,2}):(\d{2})(?::(\d{2}))?`)
	dottedTime  = regexp.MustCompile(`(?:^|\D)(\d{1,2})\.(\d{2})\.(\d{2})(?:\D|$)`)
	wordPattern = regexp.MustCompile(`[A-Za-z]+`)
	dayPattern  = regexp.MustCompile(`(?:^|\D)(\d{1,2})(?:\D|$)`)
	yearPattern = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)
)

// Parse interprets s as a date-time in the local timezone. The second
// return value is false when no reading succeeds.
func Parse(s string) (time.Time, bool) {
	return ParseIn(s, time.Local)
}

// ParseIn is Parse with an explicit timezone for readings that carry no
// offset of their own.
//
// Ambiguity: when day and month are both <= 12 ("05/07/2024") the string is
// read as day/month/year, the localized default. That is a heuristic, not a
// guarantee.
func ParseIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "-") {
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
	}

	if t, ok := parseNumericTokens(s, loc); ok {
		return t, ok
	}

	return parseMonthName(s, loc)
}

// parseNumericTokens handles purely numeric dates: "25/07/2024",
// "2024/07/25", "25.07.2024 19:45".
func parseNumericTokens(s string, loc *time.Location) (time.Time, bool) {
	tokens := tokenSplit.Split(s, -1)
	numbers := make([]int, 0, len(tokens))
	yearIndex := -1
	for _, token := range tokens {
		if len(token) == 0 || len(token) > 4 {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if len(token) == 4 && yearIndex < 0 {
			yearIndex = len(numbers)
		}
		numbers = append(numbers, n)
	}
	if yearIndex < 0 || len(numbers) < 3 {
		return time.Time{}, false
	}

	var year, month, day int
	switch yearIndex {
	case 0:
		// Year first: remaining tokens are month then day.
		year, month, day = numbers[0], numbers[1], numbers[2]
	case 2:
		first, second := numbers[0], numbers[1]
		year = numbers[2]
		switch {
		case first > 12:
			day, month = first, second
		case second > 12:
			month, day = first, second
		default:
			// Both ambiguous: localized day/month/year default.
			day, month = first, second
		}
	default:
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	hour, minute, second := extractTime(s)
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}

// parseMonthName handles dates spelled with a month name: "30 Juli 2024",
// "Kamis, 25 Juli 2024 pukul 19.30.25 WIB".
func parseMonthName(s string, loc *time.Location) (time.Time, bool) {
	lower := strings.ToLower(s)
	var month time.Month
	found := false
	for _, word := range wordPattern.FindAllString(lower, -1) {
		if m, ok := monthNames[word]; ok {
			month = m
			found = true
			break
		}
	}
	if !found {
		return time.Time{}, false
	}

	yearMatch := yearPattern.FindStringSubmatch(s)
	if yearMatch == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(yearMatch[1])

	dayMatch := dayPattern.FindStringSubmatch(s)
	if dayMatch == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayMatch[1])
	if day < 1 || day > 31 {
		return time.Time{}, false
	}

	hour, minute, second := extractTime(s)
	return time.Date(year, month, day, hour, minute, second, 0, loc), true
}

// extractTime pulls an embedded time of day out of s. Both "19:30:25" and
// the Indonesian locale's dotted "19.30.25" are recognized; the dotted form
// requires all three components so that dotted dates are not misread.
func extractTime(s string) (hour, minute, second int) {
	if m := colonTime.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			second, _ = strconv.Atoi(m[3])
		}
	} else if m := dottedTime.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		second, _ = strconv.Atoi(m[3])
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, 0, 0
	}
	return hour, minute, second
}
