package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// Artifact selectors accepted by --only
const (
	artifactAll      = "all"
	artifactSchema   = "schema"
	artifactOpenAPI  = "openapi"
	artifactDiagrams = "diagrams"
)

var generateCmd = &cobra.Command{
	Use:   "generate <model-file-or-url>",
	Short: "Generate every artifact for an entity model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		only, _ := cmd.Flags().GetString("only")

		ctx, cancel := current.loadContext(cmd.Context())
		defer cancel()

		m, err := current.loader.LoadFromPath(ctx, args[0])
		if err != nil {
			return err
		}
		log.Printf("Loaded %d entities and %d relationships from %s", len(m.Entities), len(m.Relationships), args[0])

		result, err := current.svc.Generate(cmd.Context(), m)
		if err != nil {
			return err
		}

		switch only {
		case artifactAll:
			return current.writeResult(cmd, result)
		case artifactSchema:
			return current.writeResult(cmd, result.JSONSchema)
		case artifactOpenAPI:
			return current.writeResult(cmd, result.OpenAPI.Spec)
		case artifactDiagrams:
			return current.writeResult(cmd, result.Diagrams)
		default:
			return fmt.Errorf("unknown artifact %q: must be all, schema, openapi or diagrams", only)
		}
	},
}

func init() {
	generateCmd.Flags().String("only", artifactAll, "Artifact to write: all, schema, openapi or diagrams")
}
