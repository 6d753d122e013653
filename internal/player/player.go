// Package player holds the configuration of one embeddable YouTube audio
// player. Setters keep the cross-field rules consistent: the size decides
// whether a progress bar and time code fit, and playlists are locked to the
// light theme with cookies allowed.
//
// A Player is not safe for concurrent mutation; use one per embed.
package player

import (
	"errors"
	"fmt"

	"ytaudio/internal/media"
	"ytaudio/internal/source"
)

var (
	// ErrInvalidSize is returned for a size outside the known set.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidTheme is returned for a theme other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")
	// ErrPlaylistDarkTheme is returned when a playlist is set to the dark theme.
	ErrPlaylistDarkTheme = errors.New("playlists can not use the dark theme")
	// ErrPlaylistCookiesRequired is returned when cookies are disabled on a playlist.
	ErrPlaylistCookiesRequired = errors.New("can not disable cookies with playlists")
	// ErrUnknownSetting is returned for a settings key or flag that is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")
)

// Player is the configuration of a single embed.
type Player struct {
	source    string
	mediaType media.MediaType
	id        string

	https       bool
	size        media.Size
	hd          bool
	autoplay    bool
	jsapi       bool
	loop        bool
	progressBar bool
	timeCode    bool
	cookies     bool
	theme       media.Theme
}

// New resolves src and applies opts in order. The first failing option
// aborts construction.
func New(src string, opts ...Option) (*Player, error) {
	p := &Player{
		https:   true,
		cookies: true,
		theme:   media.Dark,
	}
	p.applySize(media.Small)

	if err := p.SetSource(src); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SetSource resolves raw as a video or playlist. On failure the player is
// left as it was.
func (p *Player) SetSource(raw string) error {
	r, err := source.Resolve(raw)
	if err != nil {
		return err
	}
	p.adopt(raw, r)
	return nil
}

// SetVideo forces raw to be read as a video.
func (p *Player) SetVideo(raw string) error {
	r, err := source.ResolveVideo(raw)
	if err != nil {
		return err
	}
	p.adopt(raw, r)
	return nil
}

// SetPlaylist forces raw to be read as a playlist.
func (p *Player) SetPlaylist(raw string) error {
	r, err := source.ResolvePlaylist(raw)
	if err != nil {
		return err
	}
	p.adopt(raw, r)
	return nil
}

func (p *Player) adopt(raw string, r source.Result) {
	p.source = raw
	p.mediaType = r.Type
	p.id = r.ID
	if r.Type == media.Playlist {
		p.cookies = true
		p.theme = media.Light
	}
}

// SetSize changes the player size. Tiny and invisible players drop the
// progress bar and time code; every other size shows the progress bar.
func (p *Player) SetSize(s media.Size) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSize, int(s))
	}
	p.applySize(s)
	return nil
}

func (p *Player) applySize(s media.Size) {
	p.size = s
	if s.HasControls() {
		p.progressBar = true
		return
	}
	p.progressBar = false
	p.timeCode = false
}

// SetInvisible is shorthand for SetSize(media.Invisible).
func (p *Player) SetInvisible() *Player {
	p.applySize(media.Invisible)
	return p
}

// SetTheme changes the colour scheme. Playlists only support the light theme.
func (p *Player) SetTheme(t media.Theme) error {
	if p.mediaType == media.Playlist && t == media.Dark {
		return ErrPlaylistDarkTheme
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}
	p.theme = t
	return nil
}

// SetProgressBar shows or hides the progress bar. Turning it on while tiny
// grows the player to small; an invisible player keeps its size.
// Turning it off also drops the time code, which needs the bar.
func (p *Player) SetProgressBar(on bool) *Player {
	p.progressBar = on
	if !on {
		p.timeCode = false
		return p
	}
	if p.size == media.Tiny {
		p.applySize(media.Small)
	}
	return p
}

// SetTimeCode shows or hides the time code. Showing it turns the progress
// bar on first.
func (p *Player) SetTimeCode(on bool) *Player {
	if on {
		p.SetProgressBar(true)
	}
	p.timeCode = on
	return p
}

// SetCookies selects www.youtube.com (on) or www.youtube-nocookie.com (off).
// Playlists require cookies.
func (p *Player) SetCookies(on bool) error {
	if !on && p.mediaType == media.Playlist {
		return ErrPlaylistCookiesRequired
	}
	p.cookies = on
	return nil
}

// SetHTTPS selects the https (on) or http (off) scheme for the embed URL.
func (p *Player) SetHTTPS(on bool) *Player {
	p.https = on
	return p
}

// SetHD forces the HD stream.
func (p *Player) SetHD(on bool) *Player {
	p.hd = on
	return p
}

// SetAutoplay starts playback as soon as the player loads.
func (p *Player) SetAutoplay(on bool) *Player {
	p.autoplay = on
	return p
}

// SetJSAPI enables the YouTube JavaScript API.
func (p *Player) SetJSAPI(on bool) *Player {
	p.jsapi = on
	return p
}

// SetLoop restarts playback when the media ends.
func (p *Player) SetLoop(on bool) *Player {
	p.loop = on
	return p
}

// Source returns the raw input as last accepted.
func (p *Player) Source() string { return p.source }

// Type reports whether the source is a video or a playlist.
func (p *Player) Type() media.MediaType { return p.mediaType }

// ID returns the resolved video or playlist ID.
func (p *Player) ID() string { return p.id }

// IsVideo reports whether the source is a video.
func (p *Player) IsVideo() bool { return p.mediaType == media.Video }

// IsPlaylist reports whether the source is a playlist.
func (p *Player) IsPlaylist() bool { return p.mediaType == media.Playlist }

// Size returns the player size.
func (p *Player) Size() media.Size { return p.size }

// IsInvisible reports whether the player is the hidden 1x1 size.
func (p *Player) IsInvisible() bool { return p.size == media.Invisible }

// Theme returns the colour scheme.
func (p *Player) Theme() media.Theme { return p.theme }

// HTTPS reports whether the embed URL uses https.
func (p *Player) HTTPS() bool { return p.https }

// HD reports whether the HD stream is forced.
func (p *Player) HD() bool { return p.hd }

// Autoplay reports whether playback starts on load.
func (p *Player) Autoplay() bool { return p.autoplay }

// JSAPI reports whether the JavaScript API is enabled.
func (p *Player) JSAPI() bool { return p.jsapi }

// Loop reports whether playback restarts at the end.
func (p *Player) Loop() bool { return p.loop }

// ProgressBar reports whether the progress bar is shown.
func (p *Player) ProgressBar() bool { return p.progressBar }

// TimeCode reports whether the time code is shown.
func (p *Player) TimeCode() bool { return p.timeCode }

// Cookies reports whether the embed uses www.youtube.com rather than the
// no-cookie host.
func (p *Player) Cookies() bool { return p.cookies }
