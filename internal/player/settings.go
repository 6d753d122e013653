package player

import (
	"fmt"
	"strconv"
	"strings"

	"ytaudio/internal/media"
)

// Setting names understood by ApplySettings.
const (
	SettingHTTPS       = "https"
	SettingSize        = "size"
	SettingHD          = "hd"
	SettingAutoplay    = "autoplay"
	SettingJSAPI       = "jsapi"
	SettingProgressBar = "progressbar"
	SettingTimeCode    = "timecode"
	SettingCookies     = "cookies"
	SettingTheme       = "theme"
	SettingLoop        = "loop"
)

// valueOrder is the order in which key-value settings are applied. size
// precedes progressbar and timecode so an explicit bar setting survives the
// size rule.
var valueOrder = []string{
	SettingHTTPS,
	SettingSize,
	SettingHD,
	SettingAutoplay,
	SettingJSAPI,
	SettingProgressBar,
	SettingTimeCode,
	SettingCookies,
	SettingTheme,
	SettingLoop,
}

var boolSetters = map[string]func(*Player, bool) error{
	SettingHTTPS:       func(p *Player, on bool) error { p.SetHTTPS(on); return nil },
	SettingHD:          func(p *Player, on bool) error { p.SetHD(on); return nil },
	SettingAutoplay:    func(p *Player, on bool) error { p.SetAutoplay(on); return nil },
	SettingJSAPI:       func(p *Player, on bool) error { p.SetJSAPI(on); return nil },
	SettingProgressBar: func(p *Player, on bool) error { p.SetProgressBar(on); return nil },
	SettingTimeCode:    func(p *Player, on bool) error { p.SetTimeCode(on); return nil },
	SettingCookies:     (*Player).SetCookies,
	SettingLoop:        func(p *Player, on bool) error { p.SetLoop(on); return nil },
}

// ApplySettings applies a batch of settings. Each name in flags switches a
// boolean feature on. values are applied afterwards, in a fixed order, and
// therefore win over flags. Names are case-insensitive.
//
// The batch is all-or-nothing: if any entry fails the player is unchanged.
func (p *Player) ApplySettings(flags []string, values map[string]string) error {
	next := *p

	for _, name := range flags {
		set, ok := boolSetters[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("%w: flag %q", ErrUnknownSetting, name)
		}
		if err := set(&next, true); err != nil {
			return fmt.Errorf("flag %s: %w", name, err)
		}
	}

	normalized := make(map[string]string, len(values))
	for k, v := range values {
		key := strings.ToLower(strings.TrimSpace(k))
		if _, ok := boolSetters[key]; !ok && key != SettingSize && key != SettingTheme {
			return fmt.Errorf("%w: %q", ErrUnknownSetting, k)
		}
		normalized[key] = v
	}

	for _, key := range valueOrder {
		v, ok := normalized[key]
		if !ok {
			continue
		}
		if err := next.applyValue(key, v); err != nil {
			return err
		}
	}

	*p = next
	return nil
}

func (p *Player) applyValue(key, v string) error {
	switch key {
	case SettingSize:
		s, err := media.ParseSize(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSize, err)
		}
		return p.SetSize(s)
	case SettingTheme:
		t, err := media.ParseTheme(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTheme, err)
		}
		return p.SetTheme(t)
	default:
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		if err := boolSetters[key](p, on); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		return nil
	}
}
