package recommend

import (
	"fmt"
	"strings"

	"github.com/fragora/fragora/store"
)

// Fixed reply texts. The client renders these verbatim, so changing them is
// a user-facing change.
const (
	replyOffTopic = "Solo puedo ayudarte con perfumes y recomendaciones relacionadas :)"
	replyNoMatch  = "No encontre algo claro, pero puedo sugerir opciones si me das mas detalles."
	replyNoDirect = "No encontre coincidencias directas; intenta con otros estilos."

	// descriptorFallback replaces the descriptor list when a message passed
	// the context gate without matching any concrete term.
	descriptorFallback = "tu descripcion"
)

// ComposeChatReply builds the chat answer for a ranked recommendation list.
func ComposeChatReply(recommendations []*store.Perfume, match KeywordMatch) string {
	if len(recommendations) == 0 {
		return replyNoMatch
	}

	names := make([]string, 0, len(recommendations))
	for _, perfume := range recommendations {
		names = append(names, perfume.Name)
	}

	descriptors := strings.Join(match.Descriptors(), ", ")
	if descriptors == "" {
		descriptors = descriptorFallback
	}

	return fmt.Sprintf("Te podrian gustar %s porque encajan con %s.", strings.Join(names, " y "), descriptors)
}

// ComposeTestSummary builds the guided-test summary line from the answers
// that drove the ranking.
func ComposeTestSummary(recommendations []*store.Perfume, answers StructuredAnswers) string {
	if len(recommendations) == 0 {
		return replyNoDirect
	}

	return fmt.Sprintf(
		"Elegidos por %s para %s, %s, uso %s e intensidad %s.",
		strings.Join(answers.Style, "/"),
		answers.TimeOfDay,
		answers.Season,
		answers.UseCase,
		answers.Intensity,
	)
}
