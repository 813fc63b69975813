package media

import (
	"fmt"
	"net/url"
	"time"
)

var frenchMonths = [13]string{
	"", // months are 1-indexed
	"janvier", "février", "mars", "avril",
	"mai", "juin", "juillet", "août",
	"septembre", "octobre", "novembre", "décembre",
}

// FormatRuntime renders a minute count as "2h05". Integer division only.
func FormatRuntime(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

// FormatDate turns an ISO YYYY-MM-DD date into a long French form such as
// "5 mars 2024". Empty input yields "N/A"; anything unparsable is returned
// unchanged.
func FormatDate(isoDate string) string {
	if isoDate == "" {
		return "N/A"
	}

	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}

	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[int(t.Month())], t.Year())
}

// RatingBadge builds a shields.io badge URL colored by the score band.
// Callers only invoke it for ratings above zero.
func RatingBadge(rating float64) string {
	color := "red"
	switch {
	case rating >= 7:
		color = "brightgreen"
	case rating >= 5:
		color = "yellow"
	case rating >= 3:
		color = "orange"
	}

	label := url.QueryEscape("Note")
	value := url.QueryEscape(fmt.Sprintf("%.1f/10", rating))

	return fmt.Sprintf("https://img.shields.io/badge/%s-%s-%s?style=for-the-badge&logo=star&logoColor=white", label, value, color)
}
