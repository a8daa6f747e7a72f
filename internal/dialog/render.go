package dialog

import (
	"fmt"
	"strings"

	"github.com/contaduria-er/siafbot/internal/faq"
)

// User-facing text is Spanish; the deployment audience is the SIAF user base
// of the Contaduría General de Entre Ríos.
const (
	msgWelcome = "🤖 Bienvenido al Asistente del SIAF\n" +
		"=================================\n\n" +
		"Por favor, indicá tu nombre:"
	msgNamePrompt      = "Por favor, indicá tu nombre:"
	msgInvalidOption   = "❌ Opción inválida."
	msgFeedbackAsk     = "¿Te sirvió esta respuesta? (Sí/No)"
	msgApology         = "Lo lamento, veamos otras opciones."
	msgRewritePrompt   = "Por favor, reformulá tu consulta:"
	msgProcessing      = "⏳ Procesando tu consulta con IA..."
	msgNoModelResponse = "⚠️ No se obtuvo respuesta del modelo."
	msgCategoryGone    = "⚠️ Esa categoría ya no está disponible."

	defaultDisplayName = "Usuario"
)

// renderMenu builds the category menu from the current corpus, 1-indexed in
// corpus order.
func (c *Controller) renderMenu(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "¡Hola, %s! 👋\n\n📚 Categorías disponibles:\n", name)
	for i, cat := range c.corpus.Categories() {
		fmt.Fprintf(&b, "%d) %s\n", i+1, cat.Name)
	}
	b.WriteString("0) No encontré mi respuesta – describir consulta")
	return b.String()
}

func renderCategory(cat faq.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❓ Preguntas en '%s':\n", cat.Name)
	for i, qa := range cat.Entries {
		fmt.Fprintf(&b, "%d) %s\n", i+1, qa.Question)
	}
	b.WriteString("0) Volver al menú principal")
	return b.String()
}

// renderSuggestions lists keyword matches. The list may be empty; the footer
// options are always present so the user can still navigate.
func renderSuggestions(matches []faq.Match) string {
	var b strings.Builder
	b.WriteString("🔍 Posibles coincidencias:\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d) %s\n", i+1, m.Question)
	}
	b.WriteString("\n0) Volver al menú principal\nA) Reformular mi consulta")
	return b.String()
}
