package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ssbh-bindings/internal/gen"
	"ssbh-bindings/internal/stub"
)

func newMappyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappy",
		Short: "generate the mapping code of every exposed type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPlan(cmd)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString(outFlag)
			pkg, _ := cmd.Flags().GetString(packageFlag)

			config := gen.DefaultGeneratorConfig()
			config.OutputDir = out
			config.PackageName = pkg

			files, err := gen.NewGenerator(config).Generate(p)
			if err != nil {
				return err
			}

			return write(files, out)
		},
	}

	registerOutFlag(cmd.Flags())
	cmd.Flags().String(packageFlag, gen.DefaultGeneratorConfig().PackageName, "name of the generated package")

	return cmd
}

func newStubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubs",
		Short: "generate one declaration stub per family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPlan(cmd)
			if err != nil {
				return err
			}

			files, err := stub.Generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString(outFlag)

			return write(files, out)
		},
	}

	registerOutFlag(cmd.Flags())

	return cmd
}

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "generate the JSON Schema of the interchange document of every family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPlan(cmd)
			if err != nil {
				return err
			}

			files := make([]gen.GeneratedFile, len(p.Families))

			g, _ := errgroup.WithContext(cmd.Context())

			for i, fam := range p.Families {
				g.Go(func() error {
					root, ok := roots[fam.Name]
					if !ok {
						return fmt.Errorf("%w: %s", ErrNoRoot, fam.Name)
					}

					data, err := stub.Schema(fam, root)
					if err != nil {
						return err
					}

					files[i] = gen.GeneratedFile{Filename: stub.SchemaFilename(fam), Content: data}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString(outFlag)

			return write(files, out)
		},
	}

	registerOutFlag(cmd.Flags())

	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate the registry against the native packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPlan(cmd)
			if err != nil {
				return err
			}

			types := 0
			for _, fam := range p.Families {
				types += len(fam.Types) + len(fam.Enums)
			}

			slog.Info("registry is valid", "families", len(p.Families), "classes", types, "warnings", len(p.Diagnostics.Warnings))

			return nil
		},
	}
}

func write(files []gen.GeneratedFile, out string) error {
	if err := gen.WriteFiles(files, out); err != nil {
		return err
	}

	for _, f := range files {
		slog.Info("generated", "path", filepath.Join(out, f.Filename))
	}

	return nil
}
