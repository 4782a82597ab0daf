package domain

// Report is one embedded dashboard entry of the hub. The set is fixed at
// deploy time; the SPA renders each URL inside a sandboxed iframe.
type Report struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Sandbox     string `json:"sandbox"`
}

// DefaultSandbox matches the iframe attributes the shell has always used.
const DefaultSandbox = "allow-scripts allow-same-origin allow-forms allow-popups"
