// Package media defines shared types for the ytaudio application.
package media

import (
	"fmt"
	"strconv"
	"strings"
)

// MediaType represents whether a source is a single video or a playlist.
type MediaType int

const (
	Video MediaType = iota
	Playlist
)

func (m MediaType) String() string {
	switch m {
	case Video:
		return "video"
	case Playlist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Size is the on-page footprint of the player.
type Size int

const (
	Invisible Size = iota
	Tiny
	Small
	Medium
	Large
)

var sizeNames = []string{"invisible", "tiny", "small", "medium", "large"}

func (s Size) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sizeNames[s]
}

// Valid reports whether s is one of the defined sizes.
func (s Size) Valid() bool {
	return s >= Invisible && s <= Large
}

// HasControls reports whether the size leaves room for a progress bar.
func (s Size) HasControls() bool {
	return s != Invisible && s != Tiny
}

// ParseSize accepts a size name (case-insensitive) or its numeric value 0-4.
func ParseSize(v string) (Size, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for i, name := range sizeNames {
		if v == name {
			return Size(i), nil
		}
	}
	if n, err := strconv.Atoi(v); err == nil && Size(n).Valid() {
		return Size(n), nil
	}
	return 0, fmt.Errorf("unknown size %q (valid: %s)", v, strings.Join(sizeNames, ", "))
}

// Theme is the player colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func (t Theme) String() string { return string(t) }

// Valid reports whether t is Light or Dark.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// ParseTheme accepts "light" or "dark" (case-insensitive).
func ParseTheme(v string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(v)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown theme %q (valid: light, dark)", v)
	}
	return t, nil
}
