package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelgen/modelgen/internal/converter"
)

var convertCmd = &cobra.Command{
	Use:   "convert <schema-file-or-url>",
	Short: "Convert a generated JSON Schema to TypeScript, mongoose or SQL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")

		ctx, cancel := current.loadContext(cmd.Context())
		defer cancel()

		schema, err := current.loader.ReadJSON(ctx, args[0])
		if err != nil {
			return err
		}

		result, err := current.svc.Convert(cmd.Context(), schema, converter.Format(strings.ToLower(to)))
		if err != nil {
			return err
		}
		return current.writeText(cmd, result.Output)
	},
}

func init() {
	formats := make([]string, 0, len(converter.Formats()))
	for _, f := range converter.Formats() {
		formats = append(formats, string(f))
	}
	convertCmd.Flags().String("to", string(converter.FormatTypeScript),
		fmt.Sprintf("Target format: %s", strings.Join(formats, ", ")))
}
