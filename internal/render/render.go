// Package render turns a player configuration into embeddable markup and
// reads such markup back. Inspection parses the document with goquery, so
// nothing in the input is treated as anything but data.
package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ytaudio/internal/player"
)

const (
	flashType    = "application/x-shockwave-flash"
	hiddenInline = "visibility:hidden;display:inline;"
)

// Markup returns the XHTML object element for p.
func Markup(p *player.Player) string {
	src := html.EscapeString(p.EmbedURL(player.SeparatorPlain))

	var b strings.Builder
	fmt.Fprintf(&b, `<object type="%s" width="%d" height="%d" data="%s"`, flashType, p.Width(), p.Height(), src)
	if p.IsInvisible() {
		fmt.Fprintf(&b, ` style="%s"`, hiddenInline)
	}
	b.WriteString(">")
	fmt.Fprintf(&b, `<param name="movie" value="%s" />`, src)
	b.WriteString(`<param name="wmode" value="transparent" />`)
	b.WriteString("</object>")
	return b.String()
}

// Embed is a player object found in a document.
type Embed struct {
	Width       int
	Height      int
	Data        string // the object's data URL, unescaped
	Movie       string // the movie param URL, unescaped
	Hidden      bool
	Transparent bool
}

// Consistent reports whether the data URL and the movie param agree.
func (e Embed) Consistent() bool {
	return e.Movie == "" || e.Data == e.Movie
}

// Inspect parses an HTML document and returns every flash object it holds.
func Inspect(r io.Reader) ([]Embed, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return parseEmbeds(doc), nil
}

func parseEmbeds(doc *goquery.Document) []Embed {
	var embeds []Embed

	doc.Find("object").Each(func(_ int, s *goquery.Selection) {
		typ := strings.TrimSpace(s.AttrOr("type", ""))
		if !strings.EqualFold(typ, flashType) {
			return
		}

		e := Embed{
			Data: s.AttrOr("data", ""),
		}
		e.Width, _ = strconv.Atoi(strings.TrimSpace(s.AttrOr("width", "")))
		e.Height, _ = strconv.Atoi(strings.TrimSpace(s.AttrOr("height", "")))
		style := strings.ReplaceAll(strings.ToLower(s.AttrOr("style", "")), " ", "")
		e.Hidden = strings.Contains(style, "visibility:hidden")

		s.Find("param").Each(func(_ int, param *goquery.Selection) {
			switch strings.ToLower(param.AttrOr("name", "")) {
			case "movie":
				e.Movie = param.AttrOr("value", "")
			case "wmode":
				e.Transparent = strings.EqualFold(param.AttrOr("value", ""), "transparent")
			}
		})

		embeds = append(embeds, e)
	})

	return embeds
}
