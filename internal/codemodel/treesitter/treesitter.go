// Package treesitter implements the code model provider on top of
// tree-sitter grammars. Every discovered source file is parsed exactly once
// at open time; types, members, and body expressions are materialized into
// plain data and the syntax trees are closed, so all provider calls after
// Open answer from the in-memory symbol table.
package treesitter

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// ProgressReporter reports progress while the workspace is parsed.
type ProgressReporter interface {
	OnLoadStart(totalFiles int)
	OnFileParsed(processed, totalFiles int, fileName string)
	OnLoadComplete(typeCount, memberCount int)
}

// language is one grammar profile: it owns the tree-sitter grammar and the
// extraction of types, members, and body expressions from a parsed file.
type language interface {
	name() string
	grammar() *sitter.Language
	extractFile(root *sitter.Node, source []byte, relPath string, model *fileModel)
}

// fileModel collects what extraction found in one file, in lexical order.
type fileModel struct {
	types   []*codemodel.Type
	members map[string][]*codemodel.Member // keyed by containing type name
	bodies  map[*codemodel.Member]*codemodel.Body
}

func newFileModel() *fileModel {
	return &fileModel{
		members: make(map[string][]*codemodel.Member),
		bodies:  make(map[*codemodel.Member]*codemodel.Body),
	}
}

// Provider is the tree-sitter backed codemodel.Provider.
type Provider struct {
	lang    language
	types   []*codemodel.Type
	members map[*codemodel.Type][]*codemodel.Member
	bodies  map[*codemodel.Member]*codemodel.Body
	table   *symbolTable
}

// NewProvider creates a provider for the named language ("csharp" or "java").
func NewProvider(langName string) (*Provider, error) {
	var lang language
	switch langName {
	case "csharp":
		lang = newCSharpLanguage()
	case "java":
		lang = newJavaLanguage()
	default:
		return nil, fmt.Errorf("unsupported language: %s", langName)
	}
	return &Provider{
		lang:    lang,
		members: make(map[*codemodel.Type][]*codemodel.Member),
		bodies:  make(map[*codemodel.Member]*codemodel.Body),
	}, nil
}

// Open parses the given workspace-relative files and builds the symbol
// table. Files must already be in the desired enumeration order; Types and
// Members preserve it. A file that fails to read or parse is skipped with a
// warning; it never aborts the load.
func (p *Provider) Open(ctx context.Context, rootDir string, files []string, progress ProgressReporter) error {
	if progress != nil {
		progress.OnLoadStart(len(files))
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang.grammar())

	processed := 0
	for _, relPath := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		source, err := os.ReadFile(filepath.Join(rootDir, relPath))
		if err != nil {
			log.Printf("Warning: skipping %s: %v", relPath, err)
			processed++
			if progress != nil {
				progress.OnFileParsed(processed, len(files), filepath.Base(relPath))
			}
			continue
		}

		tree := parser.Parse(source, nil)
		if tree == nil {
			log.Printf("Warning: failed to parse %s", relPath)
			processed++
			if progress != nil {
				progress.OnFileParsed(processed, len(files), filepath.Base(relPath))
			}
			continue
		}

		model := newFileModel()
		p.lang.extractFile(tree.RootNode(), source, relPath, model)
		tree.Close()

		p.merge(model)

		processed++
		if progress != nil {
			progress.OnFileParsed(processed, len(files), filepath.Base(relPath))
		}
	}

	p.table = newSymbolTable(p.types, p.members)

	if progress != nil {
		memberCount := 0
		for _, ms := range p.members {
			memberCount += len(ms)
		}
		progress.OnLoadComplete(len(p.types), memberCount)
	}
	return nil
}

// merge appends one file's extraction results, preserving lexical order.
func (p *Provider) merge(model *fileModel) {
	for _, t := range model.types {
		p.types = append(p.types, t)
		p.members[t] = model.members[t.Name]
	}
	for m, b := range model.bodies {
		p.bodies[m] = b
	}
}

// Types implements codemodel.Provider. Order is file discovery order, then
// lexical position within a file.
func (p *Provider) Types() []*codemodel.Type {
	return p.types
}

// Members implements codemodel.Provider.
func (p *Provider) Members(t *codemodel.Type) []*codemodel.Member {
	return p.members[t]
}

// SourceDefinition implements codemodel.Provider. Members without a parsed
// body (implicit constructors, abstract methods) have no definition.
func (p *Provider) SourceDefinition(m *codemodel.Member) (*codemodel.Body, error) {
	body, ok := p.bodies[m]
	if !ok {
		return nil, codemodel.ErrNoDefinition
	}
	return body, nil
}

// SemanticScope implements codemodel.Provider.
func (p *Provider) SemanticScope(b *codemodel.Body) (codemodel.Scope, error) {
	if p.table == nil || b == nil || b.Member == nil {
		return nil, codemodel.ErrNoScope
	}
	return &scope{table: p.table, enclosing: b.Member}, nil
}
