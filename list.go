package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/miosa/folio/client"
	"github.com/miosa/folio/config"
	"github.com/miosa/folio/portfolio"
	"github.com/miosa/folio/style"
)

var (
	listFilter string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "Print one collection as a table",
	Long: `Fetches a single collection and prints it without starting the UI.

Collections: publications, awards, conferences, media, cv

Example:
  folio list publications --filter graph --sort title`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"publications", "awards", "conferences", "media", "cv"},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Only show entries matching this text")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "year", "Sort order: year or title")
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := portfolio.ParseKind(args[0])
	if err != nil {
		return err
	}
	by, err := portfolio.ParseSort(listSort)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	applyTheme(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()
	entries, err := fetchKind(ctx, newClient(cfg, zap.NewNop()), kind)
	if err != nil {
		return err
	}
	entries = portfolio.Sort(portfolio.Filter(entries, listFilter), by)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no entries")
		return nil
	}
	color := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	fmt.Fprintln(cmd.OutOrStdout(), entryTable(entries, color))
	return nil
}

// fetchKind loads a single collection.
func fetchKind(ctx context.Context, c *client.Client, kind portfolio.Kind) ([]portfolio.Entry, error) {
	switch kind {
	case portfolio.KindPublications:
		v, err := c.Publications(ctx)
		return portfolio.FromPublications(v), err
	case portfolio.KindAwards:
		v, err := c.Awards(ctx)
		return portfolio.FromAwards(v), err
	case portfolio.KindConferences:
		v, err := c.Conferences(ctx)
		return portfolio.FromConferences(v), err
	case portfolio.KindMedia:
		v, err := c.Media(ctx)
		return portfolio.FromMedia(v), err
	case portfolio.KindCV:
		v, err := c.CV(ctx)
		return portfolio.FromCV(v), err
	}
	return nil, fmt.Errorf("unknown collection %q", kind)
}

// entryTable renders entries as a bordered table. Without color the header
// and border styles are dropped so piped output stays plain text.
func entryTable(entries []portfolio.Entry, color bool) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		year := ""
		if e.Year > 0 {
			year = strconv.Itoa(e.Year)
		}
		rows[i] = []string{year, e.Title, e.Venue, strings.Join(e.Tags, ", ")}
	}
	header := lipgloss.NewStyle().Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	border := lipgloss.NewStyle()
	if color {
		header = header.Bold(true).Foreground(style.Primary)
		border = border.Foreground(style.Border)
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers("Year", "Title", "Venue", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
