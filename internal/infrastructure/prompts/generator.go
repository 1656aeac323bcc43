package prompts

import (
	"bytes"
	"text/template"
)

const DefaultCategory = "animal"

type RulesPromptData struct {
	Category string
}

// GenerateRulesPrompt renders the system prompt both players receive.
// category is the kind of word the chain is built from ("animal" by default).
func GenerateRulesPrompt(baseTemplate, category string) (string, error) {
	if category == "" {
		category = DefaultCategory
	}

	tmpl, err := template.New("rules").Parse(baseTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, RulesPromptData{Category: category}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
