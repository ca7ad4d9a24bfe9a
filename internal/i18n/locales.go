// Package i18n carries the fixed lookup tables the calendar screens render
// with: month and weekday names per language and the Gujarati/Hindi numeral
// glyphs. The tables are index-addressed; nothing here talks to the network.
package i18n

import (
	"strconv"
	"strings"

	"ayambil/internal/calendar"
)

const (
	LangGujarati = "gu"
	LangHindi    = "hi"
	LangEnglish  = "en"
)

var gujaratiDigits = [10]string{"૦", "૧", "૨", "૩", "૪", "૫", "૬", "૭", "૮", "૯"}
var hindiDigits = [10]string{"०", "१", "२", "३", "४", "५", "६", "७", "८", "९"}

var months = map[string][12]string{
	LangEnglish: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	LangGujarati: {"જાન્યુઆરી", "ફેબ્રુઆરી", "માર્ચ", "એપ્રિલ", "મે", "જૂન",
		"જુલાઈ", "ઑગસ્ટ", "સપ્ટેમ્બર", "ઑક્ટોબર", "નવેમ્બર", "ડિસેમ્બર"},
	LangHindi: {"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून",
		"जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर"},
}

var weekdays = map[string][7]string{
	LangEnglish:  {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LangGujarati: {"રવિ", "સોમ", "મંગળ", "બુધ", "ગુરુ", "શુક્ર", "શનિ"},
	LangHindi:    {"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
}

// Months returns the 12 month names for lang, falling back to English.
func Months(lang string) [12]string {
	if m, ok := months[lang]; ok {
		return m
	}
	return months[LangEnglish]
}

// Weekdays returns the 7 weekday names for lang (Sunday first), falling back
// to English.
func Weekdays(lang string) [7]string {
	if w, ok := weekdays[lang]; ok {
		return w
	}
	return weekdays[LangEnglish]
}

// LocalizeNumeral maps each ASCII digit of value to the lang's numeral glyph.
// Non-digit runes pass through unchanged; unknown languages return the input
// as is.
func LocalizeNumeral(value, lang string) string {
	var digits *[10]string
	switch lang {
	case LangGujarati:
		digits = &gujaratiDigits
	case LangHindi:
		digits = &hindiDigits
	default:
		return value
	}

	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteString(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDateByLanguage renders an ISO date as DD/MM/YYYY with localized
// digits. Unparseable input comes back untouched so screens can still show
// something.
func FormatDateByLanguage(iso, lang string) string {
	d, err := calendar.ParseISO(iso)
	if err != nil {
		return iso
	}
	display := calendar.ToDisplay(d.Day(), int(d.Month())-1, d.Year())
	return LocalizeNumeral(display, lang)
}

// FormatDateWithMonth renders an ISO date as "D MonthName YYYY" in lang.
func FormatDateWithMonth(iso, lang string) string {
	d, err := calendar.ParseISO(iso)
	if err != nil {
		return iso
	}
	m := Months(lang)[int(d.Month())-1]
	day := LocalizeNumeral(strconv.Itoa(d.Day()), lang)
	year := LocalizeNumeral(strconv.Itoa(d.Year()), lang)
	return day + " " + m + " " + year
}

