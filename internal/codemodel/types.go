package codemodel

// MemberKind classifies a type member.
type MemberKind string

const (
	KindMethod      MemberKind = "method"
	KindConstructor MemberKind = "constructor"
	KindField       MemberKind = "field"
	KindProperty    MemberKind = "property"
)

// Type represents a declared type (class or interface) in the analyzed codebase.
// Types are built once by the provider at open time and are immutable afterwards.
type Type struct {
	Name       string   // Simple name (e.g., "OrdersController")
	Namespace  string   // Declaring namespace or package (e.g., "Shop.Web")
	BaseType   string   // Simple name of the declared base type, "" if none
	Attributes []string // Attribute/annotation names attached to the declaration
	File       string   // Relative source file path
	StartLine  int      // Start line number (1-indexed)
	EndLine    int      // End line number (1-indexed)
}

// QualifiedName returns the namespace-qualified type name.
func (t *Type) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// Member represents a declared member of a type: a method, constructor,
// field, or property. Members are opaque handles for the walker; only the
// provider that created them can resolve their bodies.
type Member struct {
	Name           string     // Member name ("ctor" for constructors)
	ContainingType string     // Simple name of the declaring type
	Namespace      string     // Namespace of the declaring type
	Kind           MemberKind // method, constructor, field, or property
	Public         bool       // Declared public
	Static         bool       // Declared static
	ReturnType     string     // Return-type name for methods, declared type for fields/properties
	Attributes     []string   // Attribute/annotation names
	ParamCount     int        // Parameter count (methods and constructors)
	File           string     // Relative source file path
	StartLine      int        // Start line number (1-indexed)
}

// QualifiedName returns the containing-type-qualified member name.
func (m *Member) QualifiedName() string {
	return m.ContainingType + "." + m.Name
}

// ExprKind identifies a syntactic kind of body sub-expression.
type ExprKind string

const (
	ExprInvocation ExprKind = "invocation" // method call expression
	ExprCreation   ExprKind = "creation"   // object-creation expression
	ExprIdentifier ExprKind = "identifier" // bare identifier reference
)

// Expr is one sub-expression of a method body, materialized by the provider.
// Offset is the source byte offset; bodies enumerate expressions in offset
// order, which defines the walker's source-lexical ordering guarantee.
type Expr struct {
	Kind     ExprKind
	Offset   uint
	Receiver string // Receiver identifier for member-access invocations, "" for simple calls
	Target   string // Invoked method name, created type name, or identifier name
	ArgCount int    // Argument count for invocations and creations
}

// Body is the syntactic definition of a member: its sub-expressions in
// source order, plus the member they belong to.
type Body struct {
	Member *Member
	Exprs  []Expr
}

// Descendants returns the body's sub-expressions of the requested kind,
// in source (byte offset) order.
func (b *Body) Descendants(kind ExprKind) []Expr {
	var out []Expr
	for _, e := range b.Exprs {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
