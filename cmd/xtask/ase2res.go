package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zorbgame/zorb/internal/sprite"
)

func newAse2ResCmd() *cobra.Command {
	var out, texture string
	cmd := &cobra.Command{
		Use:   "ase2res <export.json>",
		Short: "Convert an Aseprite JSON export into a sprite sheet document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			base := strings.TrimSuffix(in, filepath.Ext(in))
			if texture == "" {
				texture = filepath.Base(base) + ".png"
			}
			if out == "" {
				out = base + ".res.json"
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", in, err)
			}
			sheet, err := sprite.FromAseprite(data, texture)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			doc, err := sprite.MarshalSheetFile(sheet)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, doc)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", `output file (default <export>.res.json), "-" for stdout`)
	cmd.Flags().StringVarP(&texture, "texture", "t", "", "texture path relative to the output (default <export>.png)")
	return cmd
}
