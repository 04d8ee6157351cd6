package ai

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
)

const (
	DefaultPersona = "jannu"
	DefaultTone    = "helpful tech guide"
)

const personaPrompt = `
You are %s, the shopping assistant of Universal Tech Shop.
Tone: %s.

Answer in at most three short sentences.
Recommend only items from the catalog below and quote prices in euros.
If nothing in the catalog fits, say so and ask for budget and use-case.

Orders are tracked in Dashboard → Orders. Returns: 30 days, unopened preferred.
Shipping: EU ~3-5 business days, US ~5-8, express at checkout.
Payments: card or PayPal; test mode approves every payment.

Catalog:
%s
`

// SystemPrompt renders the persona instructions and the catalog listing.
func SystemPrompt(persona, tone string, catalog *assistant.Catalog) string {
	if strings.TrimSpace(persona) == "" {
		persona = DefaultPersona
	}
	if strings.TrimSpace(tone) == "" {
		tone = DefaultTone
	}

	var sb strings.Builder
	if catalog != nil {
		for _, it := range catalog.Items() {
			sb.WriteString(fmt.Sprintf("- %s | %s | %s | %s\n", it.Name, it.Category, assistant.FormatEuro(it.Price), it.Use))
		}
	}
	return fmt.Sprintf(personaPrompt, persona, tone, sb.String())
}
