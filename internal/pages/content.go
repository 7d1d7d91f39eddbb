package pages

import (
	"net/url"
	"strings"
)

// DefaultGroup names links configured without a group.
const DefaultGroup = "Volantini"

const mapSearchURL = "https://www.google.com/maps/search/"

// NewContent builds the page content. Cards without an image and links
// without a URL are dropped; groups keep the order of their first link.
func NewContent(cards []Card, links []Link, mapQuery string) Content {
	c := Content{
		Cards:  make([]Card, 0, len(cards)),
		MapURL: MapURL(mapQuery),
	}
	for _, card := range cards {
		if strings.TrimSpace(card.ImageURL) == "" {
			continue
		}
		c.Cards = append(c.Cards, card)
	}

	index := map[string]int{}
	for _, l := range links {
		if strings.TrimSpace(l.URL) == "" {
			continue
		}
		group := strings.TrimSpace(l.Group)
		if group == "" {
			group = DefaultGroup
		}
		if l.Label == "" {
			l.Label = l.URL
		}
		i, ok := index[group]
		if !ok {
			i = len(c.Groups)
			index[group] = i
			c.Groups = append(c.Groups, LinkGroup{Name: group})
		}
		c.Groups[i].Links = append(c.Groups[i].Links, l)
	}
	return c
}

// MapURL returns a maps search link for query, or "" for a blank query.
func MapURL(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}
	v := url.Values{}
	v.Set("api", "1")
	v.Set("query", query)
	return mapSearchURL + "?" + v.Encode()
}
