package dialog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/contaduria-er/siafbot/internal/faq"
	"github.com/contaduria-er/siafbot/internal/gemini"
)

const promptPreamble = "Eres un asistente oficial del Sistema Integrado de Administración Financiera (SIAF) " +
	"de la Provincia de Entre Ríos, gestionado por la Contaduría General. " +
	"Responde la siguiente consulta utilizando **solo** la información del contexto proporcionado. " +
	"Si el contexto no contiene la respuesta, indícalo claramente y sugiere contacto telefónico. " +
	"No inventes información ni cites fuentes externas.\n\n"

// BuildPrompt grounds the model on the full corpus: preamble, every
// question/answer pair under its category header, then the user's query.
// The corpus is small and escalation is rare, so re-serializing per call is
// fine.
func BuildPrompt(corpus *faq.Corpus, query string) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("=== CONTEXTO DEL SISTEMA (FAQ OFICIAL) ===\n")
	for _, cat := range corpus.Categories() {
		fmt.Fprintf(&b, "\n## %s\n", cat.Name)
		for _, qa := range cat.Entries {
			fmt.Fprintf(&b, "P: %s\nR: %s\n", qa.Question, qa.Answer)
		}
	}
	b.WriteString("\n=== FIN DEL CONTEXTO ===\n\n")
	fmt.Fprintf(&b, "Consulta del usuario:\n%s\n\nRespuesta:", query)
	return b.String()
}

// escalate hands the query to the generative capability. Failures never
// propagate: the user gets a safe message and the session moves on.
func (c *Controller) escalate(ctx context.Context, query string) string {
	text, err := c.generator.Generate(ctx, BuildPrompt(c.corpus, query))
	if err != nil {
		if errors.Is(err, gemini.ErrEmptyResponse) {
			return msgNoModelResponse
		}
		log.Printf("⚠️ AI escalation failed: %v", err)
		return fmt.Sprintf("⚠️ Error al consultar la IA: %v", err)
	}
	return text
}
