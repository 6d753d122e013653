package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ytaudio/internal/render"
	"ytaudio/internal/source"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the audio players embedded in an HTML file (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  inspectRun,
}

func inspectRun(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	embeds, err := render.Inspect(r)
	if err != nil {
		return err
	}
	debugf("found %d embeds", len(embeds))

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(embeds)
	}

	if len(embeds) == 0 {
		fmt.Fprintln(out, "No embeds found.")
		return nil
	}

	for i, e := range embeds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		field(out, "url", e.Data)
		field(out, "size", fmt.Sprintf("%dx%d", e.Width, e.Height))
		if res, err := source.Resolve(e.Data); err == nil {
			field(out, res.Type.String(), res.ID)
		}
		if e.Hidden {
			field(out, "hidden", "yes")
		}
		if !e.Consistent() {
			warn(out, "movie param does not match data URL: "+e.Movie)
		}
	}
	return nil
}
