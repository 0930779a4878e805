package prompts

import _ "embed"

// Embedded prompt files

//go:embed assistant_system.txt
var assistantSystem string

func AssistantSystem() string { return assistantSystem }
