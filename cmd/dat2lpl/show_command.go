package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"dat2lpl/internal/dat"
	"dat2lpl/internal/region"
)

type catalogSummary struct {
	Path        string             `json:"path"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Version     string             `json:"version,omitempty"`
	Schema      string             `json:"schema,omitempty"`
	Games       int                `json:"games"`
	Regions     []regionGroupCount `json:"regions"`
}

type regionGroupCount struct {
	Token string `json:"token"`
	Games int    `json:"games"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <catalog.dat>",
		Short: "Inspect a DAT catalog without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := dat.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse catalog: %w", err)
			}
			summary := summarizeCatalog(args[0], catalog)

			if !stdoutIsTerminal(cmd) {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", summary.Name)
			fmt.Fprintf(out, "Description: %s\n", summary.Description)
			if summary.Version != "" {
				fmt.Fprintf(out, "Version:     %s\n", summary.Version)
			}
			if summary.Schema != "" {
				fmt.Fprintf(out, "Schema:      %s\n", summary.Schema)
			}
			fmt.Fprintf(out, "Games:       %d\n", summary.Games)

			rows := make([]countRow, 0, len(summary.Regions))
			for _, group := range summary.Regions {
				rows = append(rows, countRow{name: group.Token, count: group.Games})
			}
			fmt.Fprintln(out, renderCountTable("Region", "Games", rows))
			return nil
		},
	}
}

func summarizeCatalog(path string, catalog *dat.File) catalogSummary {
	counts := make(map[string]int)
	for _, game := range catalog.Games {
		tokens := region.Tokens(game.Name)
		if len(tokens) == 0 {
			counts[region.NoRegion]++
			continue
		}
		for _, token := range tokens {
			counts[token]++
		}
	}

	groups := make([]regionGroupCount, 0, len(counts))
	for token, games := range counts {
		groups = append(groups, regionGroupCount{Token: token, Games: games})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Games != groups[j].Games {
			return groups[i].Games > groups[j].Games
		}
		return groups[i].Token < groups[j].Token
	})

	return catalogSummary{
		Path:        path,
		Name:        catalog.Header.Name,
		Description: catalog.Header.Description,
		Version:     catalog.Header.Version,
		Schema:      catalog.SchemaLocation(),
		Games:       len(catalog.Games),
		Regions:     groups,
	}
}
