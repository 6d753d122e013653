package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"ytaudio/internal/source"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <source>",
	Short: "Show whether a source is a video or a playlist, and its ID",
	Args:  cobra.ExactArgs(1),
	RunE:  resolveRun,
}

func resolveRun(cmd *cobra.Command, args []string) error {
	r, err := source.Resolve(args[0])
	if err != nil {
		return err
	}
	debugf("resolved %q as %s", args[0], r.Type)

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"type": r.Type.String(),
			"id":   r.ID,
		})
	}

	field(out, "type", r.Type)
	field(out, "id", r.ID)
	return nil
}
