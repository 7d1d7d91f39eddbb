package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"household-orders/internal/pages"
)

type cardsView struct {
	Title string
	Cards []pages.Card
}

type linksView struct {
	Title  string
	Groups []pages.LinkGroup
	MapURL string
}

// Cards renders the loyalty card images.
func (h *handler) Cards(c *gin.Context) {
	c.HTML(http.StatusOK, "cards.html", cardsView{
		Title: h.title + " · Tessere",
		Cards: h.content.Cards,
	})
}

// Links renders the flyer links and the map link.
func (h *handler) Links(c *gin.Context) {
	c.HTML(http.StatusOK, "links.html", linksView{
		Title:  h.title + " · Volantini",
		Groups: h.content.Groups,
		MapURL: h.content.MapURL,
	})
}
