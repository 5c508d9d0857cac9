package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/callscope/internal/codemodel"
	"github.com/mvp-joe/callscope/internal/codemodel/treesitter"
	"github.com/mvp-joe/callscope/internal/config"
	"github.com/mvp-joe/callscope/internal/printer"
	"github.com/mvp-joe/callscope/internal/walker"
)

func runTrace(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling analysis...")
		cancel()
	}()

	workspace := args[0]
	typeHint := args[1]
	actionHint := ""
	if len(args) == 3 {
		actionHint = args[2]
	}

	info, err := os.Stat(workspace)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("workspace path is not a directory: %s", workspace)
	}

	cfg, err := config.LoadFromDir(workspace)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	provider, err := openWorkspace(ctx, workspace, cfg)
	if err != nil {
		return err
	}

	resolver := walker.NewEntryResolver(
		provider,
		walker.SuffixTypeClassifier{Suffix: cfg.Entry.TypeSuffix},
		walker.RouteActionClassifier{
			Attributes:  cfg.Entry.RouteAttributes,
			ResultTypes: cfg.Entry.ResultTypes,
		},
		cfg.Entry.TypeSuffix,
	)

	entryType, err := resolver.ResolveType(typeHint)
	if err != nil {
		return fmt.Errorf("no controller-like type matches %q: %w", typeHint, err)
	}

	// Discovery mode: list candidate actions and exit without walking.
	if actionHint == "" {
		actions := resolver.DiscoverActions(entryType)
		if len(actions) == 0 {
			fmt.Printf("No action-like methods found on %s\n", entryType.Name)
			return nil
		}
		fmt.Printf("Actions on %s:\n", entryType.Name)
		for _, name := range actions {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	entryMethod, err := resolver.ResolveMethod(entryType, actionHint)
	if err != nil {
		return fmt.Errorf("no method %q on %s: %w", actionHint, entryType.Name, err)
	}

	filter := walker.NewNoiseFilter(cfg.Filter.FrameworkRoots, cfg.Filter.ObjectProtocol)
	w := walker.New(provider, filter, walker.Policies{
		MaxDepth:                   cfg.Walker.MaxDepth,
		OverloadAwareKeys:          cfg.Walker.OverloadAwareKeys,
		ExpandPropertyDependencies: cfg.Walker.ExpandPropertyDependencies,
	})

	tree := printer.New(os.Stdout)
	edges := walker.NewGraphRecorder()

	if err := w.Walk(ctx, entryMethod, walker.MultiSink{tree, edges}); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("analysis cancelled")
		}
		return fmt.Errorf("traversal failed: %w", err)
	}
	tree.Flush()

	nodes, edgeCount := edges.Summary()
	fmt.Printf("\n%d methods, %d call edges\n", nodes, edgeCount)
	return nil
}

// openWorkspace discovers and parses the workspace sources.
func openWorkspace(ctx context.Context, workspace string, cfg *config.Config) (codemodel.Provider, error) {
	discovery, err := codemodel.NewDiscovery(workspace, cfg.Paths.Include, cfg.Paths.Ignore)
	if err != nil {
		return nil, fmt.Errorf("invalid path patterns: %w", err)
	}
	files, err := discovery.DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s source files found under %s", cfg.Language, workspace)
	}

	provider, err := treesitter.NewProvider(cfg.Language)
	if err != nil {
		return nil, err
	}
	if err := provider.Open(ctx, workspace, files, NewLoadProgressReporter(!verbose)); err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	return provider, nil
}
