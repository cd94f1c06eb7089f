package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errSchemaInvalid = errors.New("schema is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <schema-file-or-url>",
	Short: "Check that a document is a valid JSON Schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := current.loadContext(cmd.Context())
		defer cancel()

		schema, err := current.loader.ReadJSON(ctx, args[0])
		if err != nil {
			return err
		}

		result := current.svc.Validate(schema)
		if err := current.writeResult(cmd, result); err != nil {
			return err
		}
		if !result.Valid {
			return errSchemaInvalid
		}
		return nil
	},
}
