package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mfaj-cod/AstroKnowMe/internal/fetcher"
	"github.com/Mfaj-cod/AstroKnowMe/internal/server"
)

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "fetch <source>",
		Short:     "Fetch one source and print its normalized JSON",
		Long:      "Fetch one source and print its normalized JSON.\n\nSources: " + strings.Join(server.SourceNames, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: server.SourceNames,
		Annotations: map[string]string{
			logsToStderr: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(a.cfg, fetcher.New(a.cfg), nil)
			data, err := srv.SourceData(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(data); err != nil {
				return fmt.Errorf("encode %s: %w", args[0], err)
			}
			return nil
		},
	}
}
