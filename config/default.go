package config

import _ "embed"

// DefaultConfigYAML is the built-in configuration baked into the binary so a
// bare `budgetbook` invocation works without any external file.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
