package cache

// KeyVersion is mixed into every artifact key. Bump it when rendered output
// changes for identical inputs.
const KeyVersion = "v1"

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered format of a frame.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change artifact bytes
// beyond the frame itself.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256>" over the frame hash, the options
// and KeyVersion.
func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", KeyVersion, frameHash, opts)
}
