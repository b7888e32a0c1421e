package domain

// EnvSnapshot holds the environment data injected into generation prompts.
type EnvSnapshot struct {
	WorkingDir string
	Shell      string
	OS         string
	User       string
}
