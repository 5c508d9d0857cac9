package treesitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false from the visitor stops descent into that node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		walkTree(child, visitor)
	}
}

// findChildByType finds the first child node with the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

// findChildrenByType finds all child nodes with the given type.
func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}

// exprSyntax names the grammar-specific node kinds and shapes needed to
// materialize body expressions. Both language profiles share collectExprs
// and differ only in this table.
type exprSyntax struct {
	invocationKind   string
	creationKind     string
	argumentListKind string

	// receiverAndName splits an invocation node into its receiver
	// identifier ("" for receiverless or this-qualified calls) and the
	// invoked method name. An empty name drops the expression.
	receiverAndName func(n *sitter.Node, source []byte) (receiver, name string)

	// creationType extracts the created type name from a creation node.
	creationType func(n *sitter.Node, source []byte) string
}

// collectExprs walks a method body and records invocation, creation, and
// identifier sub-expressions in source (pre-order, byte offset) order.
func collectExprs(body *sitter.Node, source []byte, syn exprSyntax) []codemodel.Expr {
	var exprs []codemodel.Expr

	walkTree(body, func(n *sitter.Node) bool {
		switch n.Kind() {
		case syn.invocationKind:
			receiver, name := syn.receiverAndName(n, source)
			if name != "" {
				exprs = append(exprs, codemodel.Expr{
					Kind:     codemodel.ExprInvocation,
					Offset:   n.StartByte(),
					Receiver: receiver,
					Target:   name,
					ArgCount: countArguments(n, syn.argumentListKind),
				})
			}
		case syn.creationKind:
			if typeName := syn.creationType(n, source); typeName != "" {
				exprs = append(exprs, codemodel.Expr{
					Kind:     codemodel.ExprCreation,
					Offset:   n.StartByte(),
					Target:   typeName,
					ArgCount: countArguments(n, syn.argumentListKind),
				})
			}
		case "identifier":
			exprs = append(exprs, codemodel.Expr{
				Kind:   codemodel.ExprIdentifier,
				Offset: n.StartByte(),
				Target: extractNodeText(n, source),
			})
		}
		return true
	})

	return exprs
}

// countArguments counts the named children of the node's argument list.
func countArguments(n *sitter.Node, argumentListKind string) int {
	args := findChildByType(n, argumentListKind)
	if args == nil {
		if byField := n.ChildByFieldName("arguments"); byField != nil {
			args = byField
		}
	}
	if args == nil {
		return 0
	}
	return int(args.NamedChildCount())
}
