package host

import "github.com/hashicorp/go-hclog"

// Host combines a vault's theme source and sampler with a snippet renderer.
// It satisfies engine.Host.
type Host struct {
	*Vault
	*SnippetRenderer
}

// New returns a host for v that renders to v.SnippetPath().
func New(v *Vault, logger hclog.Logger) *Host {
	return &Host{
		Vault:           v,
		SnippetRenderer: NewSnippetRenderer(v.SnippetPath(), logger),
	}
}
