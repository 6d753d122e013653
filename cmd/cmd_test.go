package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags clears flag state left over from a previous run.
func resetFlags() {
	flagConfig, flagJSON, flagDebug = "", false, false
	flagSize, flagTheme = "", ""
	flagHTTP, flagNoCookies, flagHD, flagAutoplay, flagJSAPI, flagLoop = false, false, false, false, false, false
	flagProgressBar, flagTimeCode, flagURL, flagPlain = false, false, false, false
	flagFeatures, flagSet = nil, nil

	unset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.Flags().VisitAll(unset)
	rootCmd.PersistentFlags().VisitAll(unset)
}

func TestParseSetArgs(t *testing.T) {
	got, err := parseSetArgs([]string{"size=large", " Theme = light ", "hd="})
	if err != nil {
		t.Fatalf("parseSetArgs() error: %v", err)
	}
	if got["size"] != "large" || got["theme"] != "light" {
		t.Errorf("parseSetArgs() = %v", got)
	}
	if v, ok := got["hd"]; !ok || v != "" {
		t.Errorf("hd = %q, %v; want empty value present", v, ok)
	}

	for _, bad := range []string{"size", "=large"} {
		if _, err := parseSetArgs([]string{bad}); err == nil {
			t.Errorf("parseSetArgs(%q) should fail", bad)
		}
	}
}

func TestEmbedURLOutput(t *testing.T) {
	out, err := run(t, "--url", "--plain", "--hd", "--size", "medium", "--time-code", "https://youtu.be/abc123")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "https://www.youtube.com/v/abc123?version=2&hd=1&theme=dark\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestEmbedMarkupOutput(t *testing.T) {
	out, err := run(t, "--flag", "loop", "--set", "size=invisible", "abc123")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(out, `<object type="application/x-shockwave-flash" width="1" height="1"`) {
		t.Errorf("unexpected markup: %s", out)
	}
	if !strings.Contains(out, "loop=1") || !strings.Contains(out, "visibility:hidden") {
		t.Errorf("markup missing loop or hidden style: %s", out)
	}
}

func TestEmbedPlaylistRejectsDarkTheme(t *testing.T) {
	_, err := run(t, "--theme", "dark", "PLxyz987")
	if err == nil {
		t.Fatal("expected error for dark playlist")
	}
}

// A dark theme or disabled cookies in the config file are defaults for
// videos; playlists ignore them rather than failing.
func TestEmbedPlaylistIgnoresConfigDarkTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = \"dark\"\ncookies = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", path, "--url", "--plain", "https://www.youtube.com/playlist?list=PLxyz987")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want := "https://www.youtube.com/p/xyz987?version=2&theme=light\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = run(t, "--config", path, "--url", "--plain", "abc123")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	want = "https://www.youtube-nocookie.com/v/abc123?version=2&theme=dark\n"
	if out != want {
		t.Errorf("video output = %q, want %q", out, want)
	}
}

func TestEmbedUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("size = \"large\"\ncookies = false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", path, "--json", "abc123")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var got struct {
		Width    int    `json:"width"`
		EmbedURL string `json:"embed_url"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if got.Width != 224 {
		t.Errorf("width = %d, want 224", got.Width)
	}
	if !strings.Contains(got.EmbedURL, "youtube-nocookie.com") {
		t.Errorf("embed_url = %q, want nocookie host", got.EmbedURL)
	}
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, "resolve", "https://www.youtube.com/playlist?list=PLxyz987")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "playlist") || !strings.Contains(out, "PLxyz987") {
		t.Errorf("output = %q", out)
	}

	if _, err := run(t, "resolve", "https://example.com/"); err == nil {
		t.Error("expected error for unrecognized source")
	}
}

func TestInspectCommand(t *testing.T) {
	page := filepath.Join(t.TempDir(), "page.html")
	markup, err := run(t, "--size", "large", "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(page, []byte("<body>"+markup+"</body>"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "inspect", page)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "224x25") || !strings.Contains(out, "abc123") {
		t.Errorf("output = %q", out)
	}
}
