package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fragora/fragora/store"
)

func TestComposeChatReply(t *testing.T) {
	perfumes := []*store.Perfume{
		{Name: "Citrus Bloom"},
		{Name: "Ocean Breeze"},
	}

	t.Run("names and descriptors", func(t *testing.T) {
		reply := ComposeChatReply(perfumes, KeywordMatch{Styles: []string{"fresco", "citrico"}, Seasons: []string{"verano"}})
		require.Equal(t, "Te podrian gustar Citrus Bloom y Ocean Breeze porque encajan con fresco, citrico, verano.", reply)
	})

	t.Run("descriptor fallback", func(t *testing.T) {
		// A message can pass the context gate ("perfume") without matching
		// any concrete vocabulary term.
		reply := ComposeChatReply(perfumes[:1], KeywordMatch{})
		require.Equal(t, "Te podrian gustar Citrus Bloom porque encajan con tu descripcion.", reply)
	})

	t.Run("empty list", func(t *testing.T) {
		require.Equal(t, replyNoMatch, ComposeChatReply(nil, KeywordMatch{}))
	})
}

func TestComposeTestSummary(t *testing.T) {
	perfumes := []*store.Perfume{{Name: "Citrus Bloom"}}
	answers := StructuredAnswers{
		TimeOfDay: "dia",
		Season:    "verano",
		Style:     []string{"fresco", "citrico"},
		Intensity: IntensitySuave,
		UseCase:   "oficina",
	}

	require.Equal(t,
		"Elegidos por fresco/citrico para dia, verano, uso oficina e intensidad suave.",
		ComposeTestSummary(perfumes, answers),
	)
	require.Equal(t, replyNoDirect, ComposeTestSummary(nil, answers))
}
