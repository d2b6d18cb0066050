package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"findbar/internal/domain"
	"findbar/internal/search"
	"findbar/internal/store"
	"findbar/internal/ui/views"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case formatText, formatJSON:
		*f = outputFormat(v)
		return nil
	}
	return fmt.Errorf("unknown format %q (want text or json)", v)
}

func (f *outputFormat) Type() string { return "format" }

type queryOptions struct {
	tab    string
	format outputFormat
	groups map[domain.VisibilityGroup]*bool
}

type queryOutput struct {
	Query   string        `json:"query"`
	Tab     domain.TabID  `json:"tab"`
	Tabs    []tabOutput   `json:"tabs"`
	Results []domain.Item `json:"results"`
}

type tabOutput struct {
	ID    domain.TabID `json:"id"`
	Label string       `json:"label"`
	Count int          `json:"count"`
}

func newQueryCmd(opts *globalOptions) *cobra.Command {
	q := &queryOptions{format: formatText, groups: make(map[domain.VisibilityGroup]*bool)}

	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Run one search and print the results",
		Long: `Filters the dataset the same way the interactive search does, without
the debounce, and prints the tab counts followed by the matching items.`,
		Example: `  findbar query rudraksh
  findbar query --tab files r
  findbar query --chats --format json "jhaveri chat"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, q, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&q.tab, "tab", "t", string(domain.TabAll), "Tab to show: all, files, people, chat, list")
	cmd.Flags().VarP(&q.format, "format", "f", "Output format: text or json")
	for _, g := range domain.VisibilityGroups {
		q.groups[g] = cmd.Flags().Bool(string(g), false, fmt.Sprintf("Include %s in the All tab (overrides the config)", g))
	}

	return cmd
}

func runQuery(cmd *cobra.Command, opts *globalOptions, q *queryOptions, query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("query must not be empty")
	}
	tab, err := domain.ParseTab(q.tab)
	if err != nil {
		return err
	}

	cfg, err := opts.loadConfig(nil)
	if err != nil {
		return err
	}

	rs, err := store.Open(cfg.Dataset)
	if err != nil {
		return err
	}

	vis := cfg.Visibility
	for _, g := range domain.VisibilityGroups {
		if cmd.Flags().Changed(string(g)) && vis.Enabled(g) != *q.groups[g] {
			vis = vis.Toggle(g)
		}
	}
	tab = search.ResolveTab(tab, vis)

	items := rs.Items()
	out := queryOutput{
		Query:   query,
		Tab:     tab,
		Results: search.Filter(items, query, tab, vis),
	}
	for _, t := range search.Tabs(search.MatchAll(items, query), vis) {
		out.Tabs = append(out.Tabs, tabOutput{ID: t.ID, Label: t.Label, Count: t.Count})
	}

	w := cmd.OutOrStdout()
	if q.format == formatJSON {
		if out.Results == nil {
			out.Results = []domain.Item{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return writeText(w, out)
}

func writeText(w io.Writer, out queryOutput) error {
	labels := make([]string, len(out.Tabs))
	for i, t := range out.Tabs {
		marker := " "
		if t.ID == out.Tab {
			marker = "*"
		}
		labels[i] = fmt.Sprintf("%s%s %d", marker, t.Label, t.Count)
	}
	if _, err := fmt.Fprintln(w, strings.Join(labels, "  ")); err != nil {
		return err
	}

	if len(out.Results) == 0 {
		_, err := fmt.Fprintf(w, "No results found for %q\n", out.Query)
		return err
	}

	for _, item := range out.Results {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", "["+string(item.Category)+"]", item.Title); err != nil {
			return err
		}
		if detail := views.DetailLine(item); detail != "" {
			if _, err := fmt.Fprintf(w, "%8s %s\n", "", detail); err != nil {
				return err
			}
		}
	}
	return nil
}
