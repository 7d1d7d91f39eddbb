package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContent(t *testing.T) {
	c := NewContent(
		[]Card{{Name: "Coop", ImageURL: "https://img/coop.png"}, {Name: "Vuota"}},
		[]Link{
			{Label: "Lidl", URL: "https://lidl.it", Group: "Supermercati"},
			{Label: "Farmacia", URL: "https://farmacia.it"},
			{Label: "Esselunga", URL: "https://esselunga.it", Group: "Supermercati"},
			{Label: "Senza url"},
		},
		"Buttigliera Alta",
	)

	require.Len(t, c.Cards, 1)
	assert.Equal(t, "Coop", c.Cards[0].Name)

	require.Len(t, c.Groups, 2)
	assert.Equal(t, "Supermercati", c.Groups[0].Name)
	assert.Len(t, c.Groups[0].Links, 2)
	assert.Equal(t, DefaultGroup, c.Groups[1].Name)

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Buttigliera+Alta", c.MapURL)
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "", MapURL("  "))
	assert.Contains(t, MapURL("Via Roma 1, Torino"), "query=Via+Roma+1%2C+Torino")
}
