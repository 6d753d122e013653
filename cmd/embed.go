package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytaudio/internal/media"
	"ytaudio/internal/player"
	"ytaudio/internal/render"
)

// Embed flags
var (
	flagSize        string
	flagTheme       string
	flagHTTP        bool
	flagNoCookies   bool
	flagHD          bool
	flagAutoplay    bool
	flagJSAPI       bool
	flagLoop        bool
	flagProgressBar bool
	flagTimeCode    bool
	flagFeatures    []string
	flagSet         []string
	flagURL         bool
	flagPlain       bool
)

func registerEmbedFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVarP(&flagSize, "size", "s", "", "Player size: invisible | tiny | small | medium | large")
	f.StringVarP(&flagTheme, "theme", "t", "", "Player theme: light | dark")
	f.BoolVar(&flagHTTP, "http", false, "Use http:// instead of https://")
	f.BoolVar(&flagNoCookies, "no-cookies", false, "Use the youtube-nocookie.com domain (videos only)")
	f.BoolVar(&flagHD, "hd", false, "Force HD")
	f.BoolVar(&flagAutoplay, "autoplay", false, "Start playing on load")
	f.BoolVar(&flagJSAPI, "jsapi", false, "Enable the JavaScript API")
	f.BoolVar(&flagLoop, "loop", false, "Loop when finished")
	f.BoolVar(&flagProgressBar, "progress-bar", false, "Show the progress bar")
	f.BoolVar(&flagTimeCode, "time-code", false, "Show the time code (implies --progress-bar)")
	f.StringSliceVarP(&flagFeatures, "flag", "f", nil, "Enable a feature by name (repeatable): https, hd, autoplay, jsapi, progressbar, timecode, cookies, loop")
	f.StringArrayVar(&flagSet, "set", nil, "Apply a setting as key=value (repeatable); overrides --flag")
	f.BoolVarP(&flagURL, "url", "u", false, "Print only the embed URL")
	f.BoolVar(&flagPlain, "plain", false, "Join URL parameters with a plain & instead of &amp;")
}

// embedRun is the default command: ytaudio <source>
func embedRun(cmd *cobra.Command, args []string) error {
	values, err := parseSetArgs(flagSet)
	if err != nil {
		return err
	}

	opts := []player.Option{
		cfg.Option(),
		player.WithSettings(flagFeatures, values),
	}
	flagOpts, err := explicitOptions(cmd)
	if err != nil {
		return err
	}
	opts = append(opts, flagOpts...)

	debugf("building player for %q", args[0])
	p, err := player.New(args[0], opts...)
	if err != nil {
		return fmt.Errorf("building player: %w", err)
	}
	debugf("resolved %s %s, size %s, theme %s", p.Type(), p.ID(), p.Size(), p.Theme())

	sep := player.SeparatorMarkup
	if flagPlain {
		sep = player.SeparatorPlain
	}

	out := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"source":    p.Source(),
			"type":      p.Type().String(),
			"id":        p.ID(),
			"width":     p.Width(),
			"height":    p.Height(),
			"embed_url": p.EmbedURL(player.SeparatorPlain),
			"markup":    render.Markup(p),
		})
	}

	if flagURL {
		fmt.Fprintln(out, p.EmbedURL(sep))
		return nil
	}

	fmt.Fprintln(out, render.Markup(p))
	return nil
}

// explicitOptions turns the dedicated flags the user actually passed into
// player options. They are applied last and win over every other source.
func explicitOptions(cmd *cobra.Command) ([]player.Option, error) {
	changed := cmd.Flags().Changed
	var opts []player.Option

	if changed("size") {
		s, err := media.ParseSize(flagSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, player.WithSize(s))
	}
	if changed("theme") {
		t, err := media.ParseTheme(flagTheme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, player.WithTheme(t))
	}
	if changed("http") {
		opts = append(opts, player.WithHTTPS(!flagHTTP))
	}
	if changed("no-cookies") {
		opts = append(opts, player.WithCookies(!flagNoCookies))
	}
	if changed("hd") {
		opts = append(opts, player.WithHD(flagHD))
	}
	if changed("autoplay") {
		opts = append(opts, player.WithAutoplay(flagAutoplay))
	}
	if changed("jsapi") {
		opts = append(opts, player.WithJSAPI(flagJSAPI))
	}
	if changed("loop") {
		opts = append(opts, player.WithLoop(flagLoop))
	}
	if changed("progress-bar") {
		opts = append(opts, player.WithProgressBar(flagProgressBar))
	}
	if changed("time-code") {
		opts = append(opts, player.WithTimeCode(flagTimeCode))
	}

	return opts, nil
}

// parseSetArgs splits repeated key=value arguments into a settings map.
func parseSetArgs(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", arg)
		}
		values[strings.ToLower(key)] = strings.TrimSpace(value)
	}
	return values, nil
}
