package recommend

// Closed keyword vocabulary for the rule-based matcher. All terms are stored
// pre-normalized (lowercase, no diacritics); inputs are normalized before
// containment checks so accent variants match.
var (
	styleTerms  = []string{"fresco", "citrico", "acuatico", "dulce", "amaderado"}
	seasonTerms = []string{"verano", "invierno"}
	timeTerms   = []string{"dia", "noche"}

	// Intensity levels as stored on catalog entries.
	IntensitySuave  = "suave"
	IntensityMedia  = "media"
	IntensityFuerte = "fuerte"

	// allowedKeywords gates chat input: a message must contain at least one
	// of these to be treated as a perfume question at all.
	allowedKeywords = []string{
		"perfume",
		"fragancia",
		"fresco",
		"citrico",
		"acuatico",
		"dulce",
		"amaderado",
		"verano",
		"invierno",
		"dia",
		"noche",
		"suave",
		"media",
		"fuerte",
		"intenso",
	}
)

// Structured questionnaire sentinel answers.
const (
	// SeasonAllYear means the user has no season constraint.
	SeasonAllYear = "todo_el_ano"
	// TimeOfDayBoth means the user has no time-of-day constraint.
	TimeOfDayBoth = "ambos"
)
