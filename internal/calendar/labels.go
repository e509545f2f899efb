package calendar

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedLangs = []language.Tag{
	language.English,
	language.Ukrainian,
}

var langMatcher = language.NewMatcher(supportedLangs)

type labelSet struct {
	weekdays [7]string
	months   [12]string
}

var labelSets = map[language.Tag]labelSet{
	language.English: {
		weekdays: [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
	},
	language.Ukrainian: {
		weekdays: [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"},
		months: [12]string{"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень",
			"Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень"},
	},
}

const moreKey = "+%d more"

func init() {
	_ = message.SetString(language.English, moreKey, "+%d more")
	_ = message.SetString(language.Ukrainian, moreKey, "ще +%d")
}

// Labels holds the localized strings rendered around the grid.
type Labels struct {
	Tag      language.Tag
	Weekdays [7]string
	Months   [12]string

	printer *message.Printer
}

// LabelsFor matches lang (a BCP 47 tag, possibly empty or malformed) against
// the supported languages, falling back to English.
func LabelsFor(lang string) Labels {
	tag := language.English
	if lang = strings.TrimSpace(lang); lang != "" {
		if want, err := language.Parse(lang); err == nil {
			_, idx, conf := langMatcher.Match(want)
			if conf != language.No {
				tag = supportedLangs[idx]
			}
		}
	}
	set := labelSets[tag]
	return Labels{
		Tag:      tag,
		Weekdays: set.weekdays,
		Months:   set.months,
		printer:  message.NewPrinter(tag),
	}
}

// MonthTitle renders e.g. "March 2025".
func (l Labels) MonthTitle(m Month) string {
	if m.Month < 1 || m.Month > 12 {
		return m.String()
	}
	return l.Months[m.Month-1] + " " + strconv.Itoa(m.Year)
}

func (l Labels) More(n int) string {
	if l.printer == nil {
		return LabelsFor("").More(n)
	}
	return l.printer.Sprintf(moreKey, n)
}
