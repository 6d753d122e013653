// Package source classifies raw user input (a bare ID or any of the common
// YouTube URL shapes) as a video or a playlist and extracts its ID.
// Resolution is a pure string operation; nothing is looked up remotely.
package source

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"ytaudio/internal/media"
)

var (
	// ErrUnrecognizedSource is returned when input is neither a video nor a playlist.
	ErrUnrecognizedSource = errors.New("could not detect source")
	// ErrUnidentifiableVideoURL is returned when a forced video lookup finds no video ID.
	ErrUnidentifiableVideoURL = errors.New("could not identify video")
	// ErrUnidentifiablePlaylistURL is returned when a forced playlist lookup finds no list ID.
	ErrUnidentifiablePlaylistURL = errors.New("could not identify playlist")
)

// Result is a resolved source.
type Result struct {
	Type media.MediaType
	ID   string
}

// matcher inspects a parsed URL and reports whether it recognised an ID.
type matcher func(u *url.URL) (Result, bool)

// Video matchers run before the playlist matcher, so a URL carrying both
// v= and list= resolves as a video.
var (
	videoMatchers    = []matcher{matchShortLink, matchWatch, matchVPath}
	playlistMatchers = []matcher{matchListParam}
)

// Resolve classifies raw and returns its media type and ID.
//
// A bare token (no scheme, host or query) is a playlist when it starts with
// "PL" (any case) and a video otherwise. Anything else is tried against the
// video URL shapes first and the list= parameter second.
func Resolve(raw string) (Result, error) {
	u, bare, err := parse(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnrecognizedSource, raw)
	}
	if bare {
		if hasPrefixFold(raw, "PL") {
			return Result{Type: media.Playlist, ID: raw}, nil
		}
		return Result{Type: media.Video, ID: raw}, nil
	}

	if r, ok := firstMatch(u, videoMatchers, playlistMatchers); ok {
		return r, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnrecognizedSource, raw)
}

// ResolveVideo treats raw as a video. Bare tokens are accepted as video IDs
// whatever their prefix.
func ResolveVideo(raw string) (Result, error) {
	u, bare, err := parse(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnidentifiableVideoURL, raw)
	}
	if bare {
		return Result{Type: media.Video, ID: raw}, nil
	}
	if r, ok := firstMatch(u, videoMatchers); ok {
		return r, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnidentifiableVideoURL, raw)
}

// ResolvePlaylist treats raw as a playlist. Bare tokens are accepted as list
// IDs whatever their prefix.
func ResolvePlaylist(raw string) (Result, error) {
	u, bare, err := parse(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrUnidentifiablePlaylistURL, raw)
	}
	if bare {
		return Result{Type: media.Playlist, ID: raw}, nil
	}
	if r, ok := firstMatch(u, playlistMatchers); ok {
		return r, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnidentifiablePlaylistURL, raw)
}

// parse parses raw and reports whether it is a bare token: a URL that
// carries nothing but a path. Bare tokens are used verbatim as IDs, so the
// returned URL is nil for input that only fails to parse because of a bad
// percent escape.
func parse(raw string) (*url.URL, bool, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, false, errors.New("empty source")
	}
	u, err := url.Parse(raw)
	if err != nil {
		if !strings.ContainsAny(raw, ":/?#") {
			return nil, true, nil
		}
		return nil, false, err
	}
	bare := u.Scheme == "" && u.Opaque == "" && u.User == nil && u.Host == "" &&
		u.RawQuery == "" && !u.ForceQuery && u.Fragment == "" && u.Path != ""
	return u, bare, nil
}

func firstMatch(u *url.URL, groups ...[]matcher) (Result, bool) {
	for _, group := range groups {
		for _, m := range group {
			if r, ok := m(u); ok {
				return r, true
			}
		}
	}
	return Result{}, false
}

// matchShortLink handles https://youtu.be/<id>.
func matchShortLink(u *url.URL) (Result, bool) {
	if !strings.EqualFold(u.Host, "youtu.be") {
		return Result{}, false
	}
	id := strings.TrimPrefix(u.EscapedPath(), "/")
	if id == "" {
		return Result{}, false
	}
	return Result{Type: media.Video, ID: id}, true
}

// matchWatch handles /watch?v=<id>.
func matchWatch(u *url.URL) (Result, bool) {
	if !strings.EqualFold(u.Path, "/watch") {
		return Result{}, false
	}
	id, ok := queryValue(u.RawQuery, "v=")
	if !ok {
		return Result{}, false
	}
	return Result{Type: media.Video, ID: id}, true
}

// matchVPath handles the legacy /v/<id> embed path. The ID is whatever
// follows the prefix.
func matchVPath(u *url.URL) (Result, bool) {
	path := u.EscapedPath()
	if !hasPrefixFold(path, "/v/") {
		return Result{}, false
	}
	id := path[len("/v/"):]
	if id == "" {
		return Result{}, false
	}
	return Result{Type: media.Video, ID: id}, true
}

// matchListParam handles any URL carrying list=<id>.
func matchListParam(u *url.URL) (Result, bool) {
	id, ok := queryValue(u.RawQuery, "list=")
	if !ok {
		return Result{}, false
	}
	return Result{Type: media.Playlist, ID: id}, true
}

// queryValue scans the &-separated parts of a raw query for the first one
// whose key matches prefix (case-insensitive) and returns the undecoded
// remainder. Parts with an empty value are skipped, so "v=&v=abc" yields
// "abc" rather than an empty ID.
func queryValue(rawQuery, prefix string) (string, bool) {
	for _, part := range strings.Split(rawQuery, "&") {
		if hasPrefixFold(part, prefix) && len(part) > len(prefix) {
			return part[len(prefix):], true
		}
	}
	return "", false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
