package treesitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// javaLanguage is the Java grammar profile. Java has no properties, so all
// dependency candidates it produces are fields.
type javaLanguage struct {
	lang *sitter.Language
	syn  exprSyntax
}

func newJavaLanguage() *javaLanguage {
	return &javaLanguage{
		lang: sitter.NewLanguage(java.Language()),
		syn: exprSyntax{
			invocationKind:   "method_invocation",
			creationKind:     "object_creation_expression",
			argumentListKind: "argument_list",
			receiverAndName:  javaReceiverAndName,
			creationType:     javaCreationType,
		},
	}
}

func (l *javaLanguage) name() string { return "java" }

func (l *javaLanguage) grammar() *sitter.Language { return l.lang }

// extractFile extracts the package, classes, and their members.
func (l *javaLanguage) extractFile(root *sitter.Node, source []byte, relPath string, model *fileModel) {
	pkg := l.extractPackage(root, source)

	walkTree(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "class_declaration", "interface_declaration":
			l.extractType(n, source, relPath, pkg, model)
			return false
		}
		return true
	})
}

// extractPackage returns the declared package name.
func (l *javaLanguage) extractPackage(root *sitter.Node, source []byte) string {
	pkg := ""
	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() == "package_declaration" {
			nameNode := findChildByType(n, "scoped_identifier")
			if nameNode == nil {
				nameNode = findChildByType(n, "identifier")
			}
			pkg = extractNodeText(nameNode, source)
			return false
		}
		return pkg == ""
	})
	return pkg
}

// extractType extracts one class or interface and its members.
func (l *javaLanguage) extractType(node *sitter.Node, source []byte, relPath, pkg string, model *fileModel) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := extractNodeText(nameNode, source)

	t := &codemodel.Type{
		Name:       name,
		Namespace:  pkg,
		BaseType:   javaBaseType(node, source),
		Attributes: javaAnnotations(node, source),
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
			l.extractMethod(child, source, relPath, pkg, t, model)
		case "constructor_declaration":
			sawConstructor = true
			l.extractConstructor(child, source, relPath, pkg, t, model)
		case "field_declaration":
			l.extractField(child, source, relPath, pkg, t, model)
		}
	}

	if !sawConstructor && node.Kind() == "class_declaration" {
		model.members[t.Name] = append(model.members[t.Name], &codemodel.Member{
			Name:           "ctor",
			ContainingType: t.Name,
			Namespace:      pkg,
			Kind:           codemodel.KindConstructor,
			Public:         true,
			File:           relPath,
			StartLine:      t.StartLine,
		})
	}
}

func (l *javaLanguage) extractMethod(node *sitter.Node, source []byte, relPath, pkg string, t *codemodel.Type, model *fileModel) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}

	m := &codemodel.Member{
		Name:           extractNodeText(nameNode, source),
		ContainingType: t.Name,
		Namespace:      pkg,
		Kind:           codemodel.KindMethod,
		Public:         javaHasModifier(node, source, "public"),
		Static:         javaHasModifier(node, source, "static"),
		ReturnType:     extractNodeText(node.ChildByFieldName("type"), source),
		Attributes:     javaAnnotations(node, source),
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

func (l *javaLanguage) extractConstructor(node *sitter.Node, source []byte, relPath, pkg string, t *codemodel.Type, model *fileModel) {
	m := &codemodel.Member{
		Name:           "ctor",
		ContainingType: t.Name,
		Namespace:      pkg,
		Kind:           codemodel.KindConstructor,
		Public:         javaHasModifier(node, source, "public"),
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

func (l *javaLanguage) extractField(node *sitter.Node, source []byte, relPath, pkg string, t *codemodel.Type, model *fileModel) {
	typeName := extractNodeText(node.ChildByFieldName("type"), source)

	for _, declarator := range findChildrenByType(node, "variable_declarator") {
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		model.members[t.Name] = append(model.members[t.Name], &codemodel.Member{
			Name:           extractNodeText(nameNode, source),
			ContainingType: t.Name,
			Namespace:      pkg,
			Kind:           codemodel.KindField,
			Public:         javaHasModifier(node, source, "public"),
			Static:         javaHasModifier(node, source, "static"),
			ReturnType:     simpleName(typeName),
			File:           relPath,
			StartLine:      int(declarator.StartPosition().Row) + 1,
		})
	}
}

// javaBaseType returns the superclass name, "" if none.
func javaBaseType(node *sitter.Node, source []byte) string {
	superclass := node.ChildByFieldName("superclass")
	if superclass == nil {
		return ""
	}
	// superclass wraps the type: "extends BaseController"
	for i := 0; i < int(superclass.NamedChildCount()); i++ {
		return simpleName(extractNodeText(superclass.NamedChild(uint(i)), source))
	}
	return ""
}

// javaAnnotations collects annotation names from the declaration modifiers.
func javaAnnotations(node *sitter.Node, source []byte) []string {
	modifiers := findChildByType(node, "modifiers")
	if modifiers == nil {
		return nil
	}
	var attrs []string
	for i := 0; i < int(modifiers.ChildCount()); i++ {
		child := modifiers.Child(uint(i))
		switch child.Kind() {
		case "marker_annotation", "annotation":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				attrs = append(attrs, extractNodeText(nameNode, source))
			}
		}
	}
	return attrs
}

// javaHasModifier checks declaration modifiers for a keyword.
func javaHasModifier(node *sitter.Node, source []byte, keyword string) bool {
	modifiers := findChildByType(node, "modifiers")
	if modifiers == nil {
		return false
	}
	for i := 0; i < int(modifiers.ChildCount()); i++ {
		if extractNodeText(modifiers.Child(uint(i)), source) == keyword {
			return true
		}
	}
	return false
}

// javaReceiverAndName splits a method invocation into receiver and name.
func javaReceiverAndName(n *sitter.Node, source []byte) (string, string) {
	name := extractNodeText(n.ChildByFieldName("name"), source)
	obj := n.ChildByFieldName("object")
	if obj == nil {
		return "", name
	}
	switch obj.Kind() {
	case "this":
		return "", name
	case "identifier":
		return extractNodeText(obj, source), name
	}
	// Chained or nested receivers are not statically resolvable here.
	return "", ""
}

// javaCreationType extracts the created type name.
func javaCreationType(n *sitter.Node, source []byte) string {
	return simpleName(extractNodeText(n.ChildByFieldName("type"), source))
}
