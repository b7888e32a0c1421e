package domain

// Config mirrors ~/.aido/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Preferences         Preferences       `yaml:"preferences"`
	Models              []ModelDefinition `yaml:"models"`
	Execution           ExecutionSettings `yaml:"execution"`
	Security            SecuritySettings  `yaml:"security"`
	History             HistorySettings   `yaml:"history"`
	UI                  UISettings        `yaml:"ui"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel   string `yaml:"default_model"`
	Silent         bool   `yaml:"silent"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// ExecutionSettings controls how generated scripts run.
type ExecutionSettings struct {
	Shell string `yaml:"shell"`
}

// SecuritySettings toggles the advisory guardrail warning.
type SecuritySettings struct {
	Enabled   bool   `yaml:"enabled"`
	RulesFile string `yaml:"rules_file"`
}

// HistorySettings controls the persistent command history side-channel.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// UISettings selects the display language for prompts and menus.
type UISettings struct {
	Language string `yaml:"language"`
}

// ModelDefinition describes a completion backend declared in the config file.
type ModelDefinition struct {
	Name       string `yaml:"name"`
	Endpoint   string `yaml:"endpoint"`
	AuthEnvVar string `yaml:"auth_env_var"`
	ModelID    string `yaml:"model_id"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// ProviderKind identifies the wire protocol spoken by a model endpoint.
type ProviderKind string

const (
	ProviderKindUnknown   ProviderKind = "unknown"
	ProviderKindAnthropic ProviderKind = "anthropic"
	ProviderKindOpenAI    ProviderKind = "openai"
	ProviderKindOllama    ProviderKind = "ollama"
)
