package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ssbh-bindings/internal/diagnostic"
	"ssbh-bindings/internal/plan"
	"ssbh-bindings/internal/registry"
)

const (
	registryFlag = "registry"
	dirFlag      = "dir"
	verboseFlag  = "verbose"
	outFlag      = "out"
	packageFlag  = "package"
)

var ErrInvalidRegistry = errors.New("registry has errors")

// New returns the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssbhgen [sub-command]",
		Short: "Generate the ssbh_data_py binding artifacts from the exposed-type registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
	}

	registerGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(newMappyCmd())
	cmd.AddCommand(newStubsCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.String(registryFlag, "registry.yaml", "path of the exposed-type registry")
	fs.String(dirFlag, "", "working directory used to load the native packages")
	fs.BoolP(verboseFlag, "v", false, "log debug messages")
}

func registerOutFlag(fs *pflag.FlagSet) {
	fs.StringP(outFlag, "o", ".", "output directory")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool(verboseFlag)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return nil
}

// loadPlan reads the registry, analyzes the native packages and resolves the
// plan. Diagnostics are logged; error diagnostics fail the load.
func loadPlan(cmd *cobra.Command) (*plan.Plan, error) {
	path, err := cmd.Flags().GetString(registryFlag)
	if err != nil {
		return nil, err
	}

	dir, err := cmd.Flags().GetString(dirFlag)
	if err != nil {
		return nil, err
	}

	reg, err := registry.LoadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded registry", "path", path, "families", len(reg.Families))

	graph, err := plan.Analyze(reg, dir)
	if err != nil {
		return nil, fmt.Errorf("analyzing native packages: %w", err)
	}

	p, err := plan.NewResolver(graph, reg).Resolve()
	logDiagnostics(&p.Diagnostics)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegistry, path)
	}

	return p, nil
}

func logDiagnostics(d *diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		slog.Warn(w.Message, "code", w.Code, "family", w.Family, "path", w.FieldPath)
	}

	for _, e := range d.Errors {
		slog.Error(e.String(), "code", e.Code, "family", e.Family)
	}
}
