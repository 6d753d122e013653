package player

import "ytaudio/internal/media"

// Option configures a Player during New.
type Option func(*Player) error

// WithSize sets the size; see SetSize.
func WithSize(s media.Size) Option {
	return func(p *Player) error { return p.SetSize(s) }
}

// WithTheme sets the theme; see SetTheme.
func WithTheme(t media.Theme) Option {
	return func(p *Player) error { return p.SetTheme(t) }
}

// WithCookies allows or disables cookies; see SetCookies.
func WithCookies(on bool) Option {
	return func(p *Player) error { return p.SetCookies(on) }
}

// WithHTTPS selects the URL scheme; see SetHTTPS.
func WithHTTPS(on bool) Option {
	return func(p *Player) error { p.SetHTTPS(on); return nil }
}

// WithHD forces the HD stream.
func WithHD(on bool) Option {
	return func(p *Player) error { p.SetHD(on); return nil }
}

// WithAutoplay starts playback on load.
func WithAutoplay(on bool) Option {
	return func(p *Player) error { p.SetAutoplay(on); return nil }
}

// WithJSAPI enables the JavaScript API.
func WithJSAPI(on bool) Option {
	return func(p *Player) error { p.SetJSAPI(on); return nil }
}

// WithLoop restarts playback at the end.
func WithLoop(on bool) Option {
	return func(p *Player) error { p.SetLoop(on); return nil }
}

// WithProgressBar shows or hides the progress bar; see SetProgressBar.
func WithProgressBar(on bool) Option {
	return func(p *Player) error { p.SetProgressBar(on); return nil }
}

// WithTimeCode shows or hides the time code; see SetTimeCode.
func WithTimeCode(on bool) Option {
	return func(p *Player) error { p.SetTimeCode(on); return nil }
}

// WithSettings applies a settings batch; see ApplySettings.
func WithSettings(flags []string, values map[string]string) Option {
	return func(p *Player) error { return p.ApplySettings(flags, values) }
}
