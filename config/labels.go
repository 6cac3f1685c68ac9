package config

// Inscription and label tables for both faces. The Greek strings follow the
// mechanism's front-face inscriptions; the Corinthian month names follow the
// Metonic spiral reading.

// ZodiacGreek labels the ancient zodiac dial.
var ZodiacGreek = [12]string{
	"ΚΡΙΟΣ", "ΤΑΥΡΟΣ", "ΔΙΔΥΜΟΙ", "ΚΑΡΚΙΝΟΣ", "ΛΕΩΝ", "ΠΑΡΘΕΝΟΣ",
	"ΧΗΛΑΙ", "ΣΚΟΡΠΙΟΣ", "ΤΟΞΟΤΗΣ", "ΑΙΓΟΚΕΡΩΣ", "ΥΔΡΟΧΟΟΣ", "ΙΧΘΥΕΣ",
}

// ZodiacModern labels the modern zodiac ring.
var ZodiacModern = [12]string{
	"ARIES", "TAURUS", "GEMINI", "CANCER", "LEO", "VIRGO",
	"LIBRA", "SCORPIO", "SAGITTARIUS", "CAPRICORN", "AQUARIUS", "PISCES",
}

// EgyptianMonths labels the ancient 354-day calendar dial.
var EgyptianMonths = [12]string{
	"Thoth", "Phaophi", "Athyr", "Choiak", "Tybi", "Mechir",
	"Phamenoth", "Pharmuthi", "Pachon", "Payni", "Epiphi", "Mesore",
}

// MonthsModern labels the modern month ring.
var MonthsModern = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// MetonicMonths are the Corinthian month names repeated along the spiral.
var MetonicMonths = [12]string{
	"PHOINIKAIOS", "KRANEIOS", "LANOTROPIOS", "MACHANEYS", "DODEKATEYS", "EUKLEIOS",
	"ARTEMISIOS", "PSYDRUS", "GAMEILIOS", "AGRIANIOS", "PANAMOS", "APELLAIOS",
}

// GamesAncient pairs the Panhellenic games per year of the four-year dial.
var GamesAncient = [4][2]string{
	{"ISTHMIA", "OLYMPIA"},
	{"NEMEA", "NAA"},
	{"ISTHMIA", "PYTHIA"},
	{"NEMEA", "HALIEIA"},
}

// GamesModern gives the four-year cycle its modern reading.
var GamesModern = [4]string{
	"Summer Olympics", "World Cup", "Winter Olympics", "Continental Games",
}

// ExeligmosLabels are the hour-correction glyphs: 0, 8 and 16 hours.
var ExeligmosLabels = [3]string{"", "H", "Iϛ"}

// MoonPhaseNames for the ancient face.
var MoonPhaseNames = [8]string{
	"New", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// MoonPhaseNamesModern for the modern face.
var MoonPhaseNamesModern = [8]string{
	"New Moon", "Waxing Crescent", "First Quarter", "Waxing Gibbous",
	"Full Moon", "Waning Gibbous", "Last Quarter", "Waning Crescent",
}

// ParapegmaMarker is one seasonal star event on the modern calendar ring.
type ParapegmaMarker struct {
	Name      string
	DayOfYear int
	Symbol    string
}

// ParapegmaMarkers lists the events drawn on the outer ring, in calendar
// order.
var ParapegmaMarkers = []ParapegmaMarker{
	{"Vernal Equinox", 80, "VE"},
	{"Pleiades Rise", 135, "PR"},
	{"Summer Solstice", 172, "SS"},
	{"Orion Rises", 200, "OR"},
	{"Autumnal Equinox", 266, "AE"},
	{"Winter Solstice", 355, "WS"},
}

// SarosEclipseGlyphs marks months of the ancient Saros spiral carrying an
// eclipse glyph; even months read Σ (lunar), odd months Η (solar).
var SarosEclipseGlyphs = []int{18, 41, 72, 110, 155, 200}
