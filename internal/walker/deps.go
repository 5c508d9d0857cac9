package walker

import (
	"github.com/mvp-joe/callscope/internal/codemodel"
)

// DependencyUse records one referenced dependency candidate of a method
// body: the field or property member, plus any methods invoked through it
// that traversal should descend into.
type DependencyUse struct {
	Member  *codemodel.Member   // the field or property
	Invoked []*codemodel.Member // methods invoked with the member as receiver
}

// DependencyClassifier detects field/property-mediated calls within a
// method body. Every declared instance field and property of the enclosing
// type is a dependency candidate; constructor-injection wiring is not
// verified. Whether a candidate is referenced is decided by resolving body
// identifiers through the semantic scope, never by text matching.
//
// Fields and properties are treated asymmetrically by default: calls made
// through a field are followed, calls made through a property are only
// annotated. The asymmetry comes from the observed tool; ExpandProperties
// unifies the treatment.
type DependencyClassifier struct {
	ExpandProperties bool
}

// Classify returns the referenced dependency candidates of the body, in
// member enumeration order.
func (c *DependencyClassifier) Classify(body *codemodel.Body, scope codemodel.Scope, members []*codemodel.Member) []DependencyUse {
	identifiers := body.Descendants(codemodel.ExprIdentifier)
	invocations := body.Descendants(codemodel.ExprInvocation)

	var uses []DependencyUse
	for _, candidate := range members {
		if candidate.Kind != codemodel.KindField && candidate.Kind != codemodel.KindProperty {
			continue
		}
		if candidate.Static {
			continue
		}
		if !c.references(scope, identifiers, candidate) {
			continue
		}

		use := DependencyUse{Member: candidate}
		if candidate.Kind == codemodel.KindField || c.ExpandProperties {
			use.Invoked = c.invokedThrough(scope, invocations, candidate)
		}
		uses = append(uses, use)
	}
	return uses
}

// references reports whether any body identifier resolves to the candidate.
func (c *DependencyClassifier) references(scope codemodel.Scope, identifiers []codemodel.Expr, candidate *codemodel.Member) bool {
	for _, e := range identifiers {
		resolved, err := scope.ResolveIdentifier(e)
		if err != nil {
			continue
		}
		if resolved == candidate {
			return true
		}
	}
	return false
}

// invokedThrough resolves every invocation whose receiver is the candidate.
func (c *DependencyClassifier) invokedThrough(scope codemodel.Scope, invocations []codemodel.Expr, candidate *codemodel.Member) []*codemodel.Member {
	var invoked []*codemodel.Member
	for _, e := range invocations {
		if e.Receiver == "" {
			continue
		}
		receiver, err := scope.ResolveIdentifier(codemodel.Expr{
			Kind:   codemodel.ExprIdentifier,
			Offset: e.Offset,
			Target: e.Receiver,
		})
		if err != nil || receiver != candidate {
			continue
		}
		target, err := scope.ResolveInvocation(e)
		if err != nil {
			continue
		}
		invoked = append(invoked, target)
	}
	return invoked
}
