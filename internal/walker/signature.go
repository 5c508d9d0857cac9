package walker

import (
	"strconv"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// KeyPolicy controls how signature keys are formed. Keys are cycle-guard
// tokens, not full identities: with OverloadAware disabled (the default),
// distinct overloads sharing a name collapse to one key, so at most one
// overload is ever expanded per run. This mirrors the observed tool and is
// exposed as an explicit policy rather than silently approximated.
type KeyPolicy struct {
	OverloadAware bool
}

// Key returns the signature key for a member.
func (p KeyPolicy) Key(m *codemodel.Member) string {
	key := m.ContainingType + "." + m.Name
	if p.OverloadAware {
		key += "/" + strconv.Itoa(m.ParamCount)
	}
	return key
}
