package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/summon"
)

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List summon types",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			reg, err := summon.Build(cat.Summons)
			if err != nil {
				return fmt.Errorf("building summon registry: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "IDX\tNAME\tMESSAGE\tUNIQUES\tFALLBACK\tDESCRIPTION")
			for i := range reg.Len() {
				typ := reg.Type(i)
				fallback := "-"
				if fb := reg.Type(typ.Fallback()); fb != nil {
					fallback = fb.Name()
				}
				desc, _ := reg.Describe(i)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\t%s\n",
					i, typ.Name(), reg.MessageType(i), typ.UniquesAllowed(), fallback, desc)
			}
			return tw.Flush()
		},
	}
}
