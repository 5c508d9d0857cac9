package treesitter

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// csharpLanguage is the C# grammar profile.
type csharpLanguage struct {
	lang *sitter.Language
	syn  exprSyntax
}

func newCSharpLanguage() *csharpLanguage {
	return &csharpLanguage{
		lang: sitter.NewLanguage(csharp.Language()),
		syn: exprSyntax{
			invocationKind:   "invocation_expression",
			creationKind:     "object_creation_expression",
			argumentListKind: "argument_list",
			receiverAndName:  csharpReceiverAndName,
			creationType:     csharpCreationType,
		},
	}
}

func (l *csharpLanguage) name() string { return "csharp" }

func (l *csharpLanguage) grammar() *sitter.Language { return l.lang }

// extractFile extracts namespaces, classes, and their members.
func (l *csharpLanguage) extractFile(root *sitter.Node, source []byte, relPath string, model *fileModel) {
	namespace := l.extractNamespace(root, source)

	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_declaration", "interface_declaration":
			l.extractType(n, source, relPath, namespace, model)
			return false
		}
		return true
	})
}

// extractNamespace returns the first declared namespace of the file.
func (l *csharpLanguage) extractNamespace(root *sitter.Node, source []byte) string {
	namespace := ""
	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "namespace_declaration", "file_scoped_namespace_declaration":
			if nameNode := n.ChildByFieldName("name"); nameNode != nil {
				namespace = extractNodeText(nameNode, source)
			}
			return false
		}
		return namespace == ""
	})
	return namespace
}

// extractType extracts one class or interface and its members.
func (l *csharpLanguage) extractType(node *sitter.Node, source []byte, relPath, namespace string, model *fileModel) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := extractNodeText(nameNode, source)

	t := &codemodel.Type{
		Name:       name,
		Namespace:  namespace,
		BaseType:   csharpBaseType(node, source),
		Attributes: csharpAttributes(node, source),
		File:       relPath,
		StartLine:  int(node.StartPosition().Row) + 1,
		EndLine:    int(node.EndPosition().Row) + 1,
	}
	model.types = append(model.types, t)

	bodyNode := node.ChildByFieldName("body")
	if bodyNode == nil {
		return
	}

	sawConstructor := false
	for i := 0; i < int(bodyNode.ChildCount()); i++ {
		child := bodyNode.Child(uint(i))
		switch child.Kind() {
		case "method_declaration":
			l.extractMethod(child, source, relPath, namespace, t, model)
		case "constructor_declaration":
			sawConstructor = true
			l.extractConstructor(child, source, relPath, namespace, t, model)
		case "field_declaration":
			l.extractField(child, source, relPath, namespace, t, model)
		case "property_declaration":
			l.extractProperty(child, source, relPath, namespace, t, model)
		}
	}

	// Implicit parameterless constructor: resolvable for object creation,
	// but with no source definition.
	if !sawConstructor && node.Kind() == "class_declaration" {
		model.members[t.Name] = append(model.members[t.Name], &codemodel.Member{
			Name:           "ctor",
			ContainingType: t.Name,
			Namespace:      namespace,
			Kind:           codemodel.KindConstructor,
			Public:         true,
			File:           relPath,
			StartLine:      t.StartLine,
		})
	}
}

func (l *csharpLanguage) extractMethod(node *sitter.Node, source []byte, relPath, namespace string, t *codemodel.Type, model *fileModel) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	returnType := extractNodeText(node.ChildByFieldName("type"), source)
	if returnType == "" {
		returnType = extractNodeText(node.ChildByFieldName("returns"), source)
	}

	m := &codemodel.Member{
		Name:           extractNodeText(nameNode, source),
		ContainingType: t.Name,
		Namespace:      namespace,
		Kind:           codemodel.KindMethod,
		Public:         csharpHasModifier(node, source, "public"),
		Static:         csharpHasModifier(node, source, "static"),
		ReturnType:     returnType,
		Attributes:     csharpAttributes(node, source),
		ParamCount:     namedChildCount(node.ChildByFieldName("parameters")),
		File:           relPath,
		StartLine:      int(node.StartPosition().Row) + 1,
	}
	model.members[t.Name] = append(model.members[t.Name], m)

	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		model.bodies[m] = &codemodel.Body{
			Member: m,
			Exprs:  collectExprs(bodyNode, source, l.syn),
		}
	}
}

func (l *csharpLanguage) extractConstructor(node *sitter.Node, source []byte, relPath, namespace string, t *codemodel.Type, model *fileModel) {
	m := &codemodel.Member{
		Name:           "ctor",
		ContainingType: t.Name,
		Namespace:      namespace,
		Kind:           codemodel.KindConstructor,
		Public:         csharpHasModifier(node, source, "public"),
		ParamCount:     namedChildCount(node.ChildByFieldName("parameters")),
		File:           relPath,
		StartLine:      int(node.StartPosition().Row) + 1,
	}
	model.members[t.Name] = append(model.members[t.Name], m)

	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		model.bodies[m] = &codemodel.Body{
			Member: m,
			Exprs:  collectExprs(bodyNode, source, l.syn),
		}
	}
}

func (l *csharpLanguage) extractField(node *sitter.Node, source []byte, relPath, namespace string, t *codemodel.Type, model *fileModel) {
	decl := findChildByType(node, "variable_declaration")
	if decl == nil {
		return
	}
	typeName := extractNodeText(decl.ChildByFieldName("type"), source)

	for _, declarator := range findChildrenByType(decl, "variable_declarator") {
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			nameNode = findChildByType(declarator, "identifier")
		}
		if nameNode == nil {
			continue
		}
		model.members[t.Name] = append(model.members[t.Name], &codemodel.Member{
			Name:           extractNodeText(nameNode, source),
			ContainingType: t.Name,
			Namespace:      namespace,
			Kind:           codemodel.KindField,
			Public:         csharpHasModifier(node, source, "public"),
			Static:         csharpHasModifier(node, source, "static"),
			ReturnType:     typeName,
			File:           relPath,
			StartLine:      int(declarator.StartPosition().Row) + 1,
		})
	}
}

func (l *csharpLanguage) extractProperty(node *sitter.Node, source []byte, relPath, namespace string, t *codemodel.Type, model *fileModel) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	model.members[t.Name] = append(model.members[t.Name], &codemodel.Member{
		Name:           extractNodeText(nameNode, source),
		ContainingType: t.Name,
		Namespace:      namespace,
		Kind:           codemodel.KindProperty,
		Public:         csharpHasModifier(node, source, "public"),
		Static:         csharpHasModifier(node, source, "static"),
		ReturnType:     extractNodeText(node.ChildByFieldName("type"), source),
		File:           relPath,
		StartLine:      int(node.StartPosition().Row) + 1,
	})
}

// csharpBaseType returns the first base-list entry, "" if none.
func csharpBaseType(node *sitter.Node, source []byte) string {
	baseList := findChildByType(node, "base_list")
	if baseList == nil {
		return ""
	}
	for i := 0; i < int(baseList.NamedChildCount()); i++ {
		return strings.TrimSpace(extractNodeText(baseList.NamedChild(uint(i)), source))
	}
	return ""
}

// csharpAttributes collects attribute names attached to a declaration.
func csharpAttributes(node *sitter.Node, source []byte) []string {
	var attrs []string
	for _, list := range findChildrenByType(node, "attribute_list") {
		for _, attr := range findChildrenByType(list, "attribute") {
			if nameNode := attr.ChildByFieldName("name"); nameNode != nil {
				attrs = append(attrs, extractNodeText(nameNode, source))
			}
		}
	}
	return attrs
}

// csharpHasModifier checks declaration modifiers for a keyword.
func csharpHasModifier(node *sitter.Node, source []byte, keyword string) bool {
	for _, mod := range findChildrenByType(node, "modifier") {
		if extractNodeText(mod, source) == keyword {
			return true
		}
	}
	return false
}

// csharpReceiverAndName splits an invocation into receiver and method name.
// this-qualified calls count as receiverless; calls through arbitrary
// expressions (chained calls, indexing) are dropped as unresolvable.
func csharpReceiverAndName(n *sitter.Node, source []byte) (string, string) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return "", ""
	}
	switch fn.Kind() {
	case "identifier", "generic_name":
		return "", simpleName(extractNodeText(fn, source))
	case "member_access_expression":
		name := simpleName(extractNodeText(fn.ChildByFieldName("name"), source))
		expr := fn.ChildByFieldName("expression")
		if expr == nil {
			return "", name
		}
		switch expr.Kind() {
		case "this_expression":
			return "", name
		case "identifier":
			return extractNodeText(expr, source), name
		}
		return "", ""
	}
	return "", ""
}

// csharpCreationType extracts the created type name.
func csharpCreationType(n *sitter.Node, source []byte) string {
	return simpleName(extractNodeText(n.ChildByFieldName("type"), source))
}

// simpleName strips generic arguments from a type or method name.
func simpleName(name string) string {
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		return name[:idx]
	}
	return name
}

// namedChildCount counts named children, 0 for nil nodes.
func namedChildCount(n *sitter.Node) int {
	if n == nil {
		return 0
	}
	return int(n.NamedChildCount())
}
