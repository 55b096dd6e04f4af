package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/darkslide/internal/engine"
	"github.com/jmylchreest/darkslide/internal/settings"
)

// showOutput is the JSON form of the show command.
type showOutput struct {
	Settings settings.Settings `json:"settings"`
	Active   engine.State      `json:"active"`
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List stored values and the overlay for the active theme",
		Long: `List the global brightness and contrast, every theme with its own values,
and the overlay that would be applied to the active theme. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, s.close()) }()

			st := s.engine.Compute()
			out := cmd.OutOrStdout()

			if opts.jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(showOutput{Settings: s.store.Snapshot(), Active: st})
			}

			fmt.Fprint(out, settingsTable(s.store, st.Theme).Render())
			fmt.Fprintln(out)

			preview, err := opts.showPreview(out)
			if err != nil {
				return err
			}
			return printState(out, st, false, preview)
		},
	}
}

// settingsTable lists the global values followed by every theme override.
func settingsTable(store *settings.Store, active string) *Table {
	table := NewTable([]string{"THEME", "BRIGHTNESS", "CONTRAST", "ACTIVE"})

	b, c := store.Legacy()
	table.AddRow([]string{"(global)", strconv.Itoa(b), strconv.Itoa(c)})

	for _, id := range store.Themes() {
		marker := ""
		if id == active {
			marker = "*"
		}
		table.AddRow([]string{
			id,
			strconv.Itoa(store.Brightness(id)),
			strconv.Itoa(store.Contrast(id)),
			marker,
		})
	}

	if !store.HasOverride(active) {
		name := active
		if name == "" {
			name = "(built-in)"
		}
		table.AddRow([]string{name + " (global)", strconv.Itoa(store.Brightness(active)), strconv.Itoa(store.Contrast(active)), "*"})
	}

	return table
}
