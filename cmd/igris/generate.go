package main

import (
	"github.com/katalvlaran/igris/analysis"
	"github.com/katalvlaran/igris/config"
	"github.com/katalvlaran/igris/topology"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an IGRIS graph",
		Long: `Generates the IGRIS graph. Flags default to the generator section of the
configuration; a seed of 0 draws a fresh seed from the clock.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := a.cfg.Generator
			opts, err := gen.GeneratorOptions()
			if err != nil {
				return err
			}
			g, err := topology.Build(gen.RewiringProb, gen.HubConnectivity, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("graph generated",
				zap.Float64("rewiring", gen.RewiringProb),
				zap.Int("hubs", gen.HubConnectivity),
				zap.String("policy", gen.RewirePolicy),
				zap.Int("edges", g.EdgeCount()),
			)

			if format == formatSummary {
				sum, err := analysis.Summarize(g)
				if err != nil {
					return err
				}
				return renderSummaries(cmd.OutOrStdout(), []namedSummary{{topology.NameIGRIS, sum}})
			}
			return renderGraph(cmd.OutOrStdout(), g, format)
		},
	}

	d := config.Default().Generator
	cmd.Flags().Float64("rewiring", d.RewiringProb, "probability of rewiring each ring link into a shortcut [0,1]")
	cmd.Flags().Int("hubs", d.HubConnectivity, "distinct cells each hub connects to [1,20]")
	cmd.Flags().Int64("seed", d.Seed, "random seed (0 = time based)")
	cmd.Flags().String("policy", d.RewirePolicy, "self-targeted shortcut handling: drop or resample")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, yaml, adjacency, summary")

	return cmd
}

func newTransformerCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "transformer",
		Short: "Print the Transformer layer stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := topology.BuildTransformer()
			if err != nil {
				return err
			}
			a.logger.Debug("transformer generated", zap.Int("nodes", g.NodeCount()))

			if format == formatSummary {
				sum, err := analysis.Summarize(g)
				if err != nil {
					return err
				}
				return renderSummaries(cmd.OutOrStdout(), []namedSummary{{topology.NameTransformer, sum}})
			}
			return renderGraph(cmd.OutOrStdout(), g, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json, yaml, adjacency, summary")

	return cmd
}
