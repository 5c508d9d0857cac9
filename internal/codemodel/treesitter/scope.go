package treesitter

import (
	"github.com/mvp-joe/callscope/internal/codemodel"
)

// symbolTable is the provider-wide index of declared types and members.
// Name collisions across namespaces keep the first declaration in
// enumeration order, matching the provider's first-match-wins contract.
type symbolTable struct {
	typesByName map[string]*typeEntry
}

type typeEntry struct {
	t       *codemodel.Type
	members []*codemodel.Member
}

func newSymbolTable(types []*codemodel.Type, members map[*codemodel.Type][]*codemodel.Member) *symbolTable {
	table := &symbolTable{
		typesByName: make(map[string]*typeEntry, len(types)),
	}
	for _, t := range types {
		if _, exists := table.typesByName[t.Name]; exists {
			continue
		}
		table.typesByName[t.Name] = &typeEntry{t: t, members: members[t]}
	}
	return table
}

// methodOn returns the first method named name on the type.
func (s *symbolTable) methodOn(typeName, name string) (*codemodel.Member, bool) {
	entry, ok := s.typesByName[typeName]
	if !ok {
		return nil, false
	}
	for _, m := range entry.members {
		if m.Kind == codemodel.KindMethod && m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// constructorOn returns the first constructor of the type.
func (s *symbolTable) constructorOn(typeName string) (*codemodel.Member, bool) {
	entry, ok := s.typesByName[typeName]
	if !ok {
		return nil, false
	}
	for _, m := range entry.members {
		if m.Kind == codemodel.KindConstructor {
			return m, true
		}
	}
	return nil, false
}

// dependencyMemberOn returns the field or property named name on the type.
func (s *symbolTable) dependencyMemberOn(typeName, name string) (*codemodel.Member, bool) {
	entry, ok := s.typesByName[typeName]
	if !ok {
		return nil, false
	}
	for _, m := range entry.members {
		if (m.Kind == codemodel.KindField || m.Kind == codemodel.KindProperty) && m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// hasType reports whether a type with the given simple name is declared.
func (s *symbolTable) hasType(name string) bool {
	_, ok := s.typesByName[name]
	return ok
}

// scope resolves the body expressions of one member against the symbol
// table. Resolution is static and name-based: receiverless invocations bind
// to the enclosing type, member-access invocations bind through declared
// field/property types or known type names (static calls). Virtual dispatch
// is intentionally not modeled.
type scope struct {
	table     *symbolTable
	enclosing *codemodel.Member
}

// ResolveInvocation implements codemodel.Scope.
func (s *scope) ResolveInvocation(e codemodel.Expr) (*codemodel.Member, error) {
	if e.Receiver == "" {
		if m, ok := s.table.methodOn(s.enclosing.ContainingType, e.Target); ok {
			return m, nil
		}
		return nil, codemodel.ErrUnresolved
	}

	// Receiver is a field or property of the enclosing type: bind through
	// its declared type.
	if dep, ok := s.table.dependencyMemberOn(s.enclosing.ContainingType, e.Receiver); ok {
		if m, found := s.table.methodOn(simpleName(dep.ReturnType), e.Target); found {
			return m, nil
		}
		return nil, codemodel.ErrUnresolved
	}

	// Receiver is a known type name: static call.
	if s.table.hasType(e.Receiver) {
		if m, ok := s.table.methodOn(e.Receiver, e.Target); ok {
			return m, nil
		}
	}

	return nil, codemodel.ErrUnresolved
}

// ResolveCreation implements codemodel.Scope.
func (s *scope) ResolveCreation(e codemodel.Expr) (*codemodel.Member, error) {
	if m, ok := s.table.constructorOn(e.Target); ok {
		return m, nil
	}
	return nil, codemodel.ErrUnresolved
}

// ResolveIdentifier implements codemodel.Scope.
func (s *scope) ResolveIdentifier(e codemodel.Expr) (*codemodel.Member, error) {
	if m, ok := s.table.dependencyMemberOn(s.enclosing.ContainingType, e.Target); ok {
		return m, nil
	}
	return nil, codemodel.ErrUnresolved
}
