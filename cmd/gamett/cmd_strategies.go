package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/gamett/internal/strategy"
	"github.com/spf13/cobra"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the competing strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			type strategyInfo struct {
				ID   strategy.ID `json:"id"`
				Name string      `json:"name"`
			}
			ids := strategy.All()
			infos := make([]strategyInfo, len(ids))
			for i, id := range ids {
				infos[i] = strategyInfo{ID: id, Name: id.Name()}
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", info.ID, info.Name)
			}
			return nil
		},
	}
}
