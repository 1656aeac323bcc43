package prompts

import (
	_ "embed"
)

//go:embed rules.txt
var RulesPromptTemplate string
