package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/variomics/varclass/internal/domain"
)

func newCriteriaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the supported evidence criteria",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, id := range domain.AllCriteria {
				polarity := "pathogenic"
				if id.Polarity() == domain.PolarityBenign {
					polarity = "benign"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", id, polarity)
			}
		},
	}
}
