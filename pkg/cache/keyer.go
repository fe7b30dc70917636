package cache

// ArtifactKeyOpts identifies one rendered artifact.
type ArtifactKeyOpts struct {
	// Format is the output encoding ("pdf", "svg" or "png").
	Format string `json:"format"`
	// Config is the canonical JSON form of the drawing configuration.
	Config []byte `json:"config"`
	// Stones is the canonical JSON form of the stone list.
	Stones []byte `json:"stones"`
	// Version separates artifacts produced by different builds.
	Version string `json:"version,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, opts.Version, string(opts.Config), string(opts.Stones))
}

var _ Keyer = DefaultKeyer{}
