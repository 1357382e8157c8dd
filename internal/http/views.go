package http

import (
	"embed"
	"html/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sujalbistaa/postpilot/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const fallbackStyle = "bg-gray-100 text-gray-700"

var platformStyles = map[models.Platform]string{
	models.PlatformTwitter:   "bg-blue-100 text-blue-700",
	models.PlatformFacebook:  "bg-blue-100 text-blue-800",
	models.PlatformInstagram: "bg-pink-100 text-pink-700",
	models.PlatformLinkedIn:  "bg-blue-100 text-blue-900",
}

var statusStyles = map[models.Status]string{
	models.StatusScheduled: "bg-yellow-100 text-yellow-800",
	models.StatusPublished: "bg-green-100 text-green-800",
	models.StatusDraft:     "bg-gray-100 text-gray-700",
	models.StatusFailed:    "bg-red-100 text-red-800",
}

// platformStyle returns the badge classes for p, gray for unknown platforms.
func platformStyle(p models.Platform) string {
	if s, ok := platformStyles[p]; ok {
		return s
	}
	return fallbackStyle
}

func statusStyle(s models.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return fallbackStyle
}

// label title-cases an identifier for display ("linkedin" -> "Linkedin").
// Casers are stateful, so each call builds its own.
func label(s string) string {
	return cases.Title(language.English).String(s)
}

func platformInitial(p models.Platform) string {
	r := []rune(string(p))
	if len(r) == 0 {
		return ""
	}
	return cases.Upper(language.English).String(string(r[0]))
}

const scheduleLayout = "2006-01-02T15:04"

// formatSchedule renders a slot as "Jan 15, 2025 at 10:00 AM". Values that
// do not parse are shown as entered.
func formatSchedule(date, clock string) string {
	t, err := time.Parse(scheduleLayout, date+"T"+clock)
	if err != nil {
		return date + " " + clock
	}
	return t.Format("Jan 2, 2006") + " at " + t.Format("03:04 PM")
}

func formatShortDate(date, clock string) string {
	t, err := time.Parse(scheduleLayout, date+"T"+clock)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"platformStyle":   platformStyle,
		"statusStyle":     statusStyle,
		"platformLabel":   func(p models.Platform) string { return label(string(p)) },
		"statusLabel":     func(s models.Status) string { return label(string(s)) },
		"platformInitial": platformInitial,
		"formatSchedule":  formatSchedule,
		"formatShortDate": formatShortDate,
		"hasPlatform":     func(d models.Draft, p models.Platform) bool { return d.HasPlatform(p) },
	}
}

// loadTemplates parses the embedded page templates.
func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html")
}
