package main

import (
	"github.com/katalvlaran/igris/analysis"
	"github.com/katalvlaran/igris/config"
	"github.com/katalvlaran/igris/topology"
	"github.com/spf13/cobra"
)

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare IGRIS with the Transformer stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := a.cfg.Generator
			opts, err := gen.GeneratorOptions()
			if err != nil {
				return err
			}
			ig, err := topology.Build(gen.RewiringProb, gen.HubConnectivity, opts...)
			if err != nil {
				return err
			}
			tr, err := topology.BuildTransformer()
			if err != nil {
				return err
			}
			cmp, err := analysis.Compare(ig, tr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderProfiles(out, topology.Profiles()); err != nil {
				return err
			}
			return renderSummaries(out, []namedSummary{
				{topology.NameIGRIS, cmp.IGRIS},
				{topology.NameTransformer, cmp.Transformer},
			})
		},
	}

	d := config.Default().Generator
	cmd.Flags().Float64("rewiring", d.RewiringProb, "probability of rewiring each ring link into a shortcut [0,1]")
	cmd.Flags().Int("hubs", d.HubConnectivity, "distinct cells each hub connects to [1,20]")
	cmd.Flags().Int64("seed", d.Seed, "random seed (0 = time based)")
	cmd.Flags().String("policy", d.RewirePolicy, "self-targeted shortcut handling: drop or resample")

	return cmd
}
