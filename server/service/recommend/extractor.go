package recommend

import "strings"

// KeywordMatch is the signal extracted from one request. The slices carry
// set semantics; they are kept in vocabulary order so reply composition is
// deterministic. Intensity is empty when no intensity term was found.
type KeywordMatch struct {
	Styles    []string
	Seasons   []string
	Times     []string
	Intensity string
}

// IsEmpty reports whether no signal at all was extracted.
func (m *KeywordMatch) IsEmpty() bool {
	return len(m.Styles) == 0 && len(m.Seasons) == 0 && len(m.Times) == 0 && m.Intensity == ""
}

// Descriptors returns all matched style, season, and time terms in order.
func (m *KeywordMatch) Descriptors() []string {
	descriptors := make([]string, 0, len(m.Styles)+len(m.Seasons)+len(m.Times))
	descriptors = append(descriptors, m.Styles...)
	descriptors = append(descriptors, m.Seasons...)
	descriptors = append(descriptors, m.Times...)
	return descriptors
}

// ExtractFromText pulls style/season/time/intensity signals out of a
// free-text message.
//
// Matching is plain substring containment over the normalized message, not
// tokenized: "diametro" matches the time term "dia". That over-matching is
// an accepted limitation of the matcher; fixing it would change
// recommendation output, so it stays as-is.
func ExtractFromText(message string) KeywordMatch {
	value := Normalize(message)

	match := KeywordMatch{}
	for _, term := range styleTerms {
		if strings.Contains(value, term) {
			match.Styles = append(match.Styles, term)
		}
	}
	for _, term := range seasonTerms {
		if strings.Contains(value, term) {
			match.Seasons = append(match.Seasons, term)
		}
	}
	for _, term := range timeTerms {
		if strings.Contains(value, term) {
			match.Times = append(match.Times, term)
		}
	}

	// Fixed precedence when several intensity terms appear: suave wins,
	// then fuerte ("intenso" is an alias), then media.
	switch {
	case strings.Contains(value, "suave"):
		match.Intensity = IntensitySuave
	case strings.Contains(value, "fuerte"), strings.Contains(value, "intenso"):
		match.Intensity = IntensityFuerte
	case strings.Contains(value, "media"):
		match.Intensity = IntensityMedia
	}

	return match
}

// StructuredAnswers are the guided-test questionnaire answers, already
// validated at the API boundary.
type StructuredAnswers struct {
	TimeOfDay string   // dia | noche | ambos
	Season    string   // verano | invierno | todo_el_ano
	Style     []string // free style terms
	Intensity string   // suave | media | fuerte
	UseCase   string   // oficina | cita | diario | fiesta
}

// ExtractFromAnswers maps questionnaire answers onto the same KeywordMatch
// the free-text path produces. The any-season and both-times sentinels map
// to empty sets, meaning "no constraint".
func ExtractFromAnswers(answers StructuredAnswers) KeywordMatch {
	match := KeywordMatch{Intensity: answers.Intensity}

	for _, style := range answers.Style {
		match.Styles = append(match.Styles, Normalize(style))
	}
	if answers.Season != SeasonAllYear {
		match.Seasons = []string{answers.Season}
	}
	if answers.TimeOfDay != TimeOfDayBoth {
		match.Times = []string{answers.TimeOfDay}
	}

	return match
}

// IsPerfumeContext reports whether the message is about perfumes at all.
// Off-topic chat is redirected before any scoring happens.
func IsPerfumeContext(message string) bool {
	value := Normalize(message)
	for _, keyword := range allowedKeywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}
