package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/zorbgame/zorb/internal/tilemap"
)

func newGenTilesCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gen-tiles",
		Short: "Generate the neighbor mask to tile offset table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var buf bytes.Buffer
			if err := tilemap.WriteTable(&buf); err != nil {
				return err
			}
			return writeOutput(cmd, out, buf.Bytes())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "mask_table.go", `output file, "-" for stdout`)
	return cmd
}
