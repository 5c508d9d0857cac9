package walker

import (
	"strings"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// NoiseFilter rejects framework and universal object-protocol methods from
// expansion. Filtered methods never appear in output, not even as leaves.
type NoiseFilter struct {
	frameworkRoots []string
	objectProtocol map[string]bool
}

// NewNoiseFilter creates a noise filter from framework-root namespace
// markers and universal method names (string conversion, equality, hash
// computation, runtime-type query for the analyzed language).
func NewNoiseFilter(frameworkRoots, objectProtocol []string) *NoiseFilter {
	protocol := make(map[string]bool, len(objectProtocol))
	for _, name := range objectProtocol {
		protocol[name] = true
	}
	return &NoiseFilter{
		frameworkRoots: frameworkRoots,
		objectProtocol: protocol,
	}
}

// ShouldSkip reports whether the method must be excluded from traversal.
func (f *NoiseFilter) ShouldSkip(m *codemodel.Member) bool {
	for _, root := range f.frameworkRoots {
		if m.Namespace == root || strings.HasPrefix(m.Namespace, root+".") {
			return true
		}
	}
	return f.objectProtocol[m.Name]
}
