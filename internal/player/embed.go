package player

import (
	"strings"

	"ytaudio/internal/media"
)

// Separator joins embed URL query parameters.
type Separator string

const (
	// SeparatorPlain joins parameters for use outside markup.
	SeparatorPlain Separator = "&"

	// SeparatorMarkup joins parameters for use inside an HTML attribute.
	SeparatorMarkup Separator = "&amp;"
)

// Height returns the player height in pixels.
func (p *Player) Height() int {
	if p.size == media.Invisible {
		return 1
	}
	return 25
}

// Width returns the player width in pixels. The time code adds 75px to the
// sizes that have controls.
func (p *Player) Width() int {
	var base int
	switch p.size {
	case media.Invisible:
		return 1
	case media.Tiny:
		return 30
	case media.Small:
		base = 150
	case media.Medium:
		base = 187
	case media.Large:
		base = 224
	}
	if p.timeCode {
		base += 75
	}
	return base
}

// EmbedURL builds the player URL, joining query parameters with sep.
func (p *Player) EmbedURL(sep Separator) string {
	var b strings.Builder

	if p.https {
		b.WriteString("https://")
	} else {
		b.WriteString("http://")
	}

	if p.cookies {
		b.WriteString("www.youtube.com")
	} else {
		b.WriteString("www.youtube-nocookie.com")
	}

	switch p.mediaType {
	case media.Playlist:
		// The embed path wants the list ID without its two-letter type marker.
		b.WriteString("/p/")
		if len(p.id) > 2 {
			b.WriteString(p.id[2:])
		}
	default:
		b.WriteString("/v/")
		b.WriteString(p.id)
	}

	params := []string{"version=2"}
	if p.autoplay {
		params = append(params, "autoplay=1")
	}
	if p.loop {
		params = append(params, "loop=1")
	}
	if p.jsapi {
		params = append(params, "enablejsapi=1")
	}
	if p.hd {
		params = append(params, "hd=1")
	}
	params = append(params, "theme="+p.theme.String())

	b.WriteByte('?')
	b.WriteString(strings.Join(params, string(sep)))
	return b.String()
}
