package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRendered(cmd *cobra.Command, rendered string, err error) error {
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// fetch runs fn behind a spinner unless the output is meant for machines.
func fetch(cmd *cobra.Command, asJSON bool, label string, fn func(context.Context) error) error {
	return fetchWithProgress(cmd, asJSON, label, func(ctx context.Context, _ reportFunc) error {
		return fn(ctx)
	})
}

func fetchWithProgress(cmd *cobra.Command, asJSON bool, label string, fn func(context.Context, reportFunc) error) error {
	if asJSON {
		return fn(cmd.Context(), discardProgress)
	}
	return runWithProgress(cmd.Context(), cmd.ErrOrStderr(), label, fn)
}
