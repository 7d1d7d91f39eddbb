package pages

// Card is a loyalty card shown as an image.
type Card struct {
	Name     string
	ImageURL string
}

// Link is an external link, usually a store flyer.
type Link struct {
	Label string
	URL   string
	Group string
}

// LinkGroup is the links sharing one Group, in configuration order.
type LinkGroup struct {
	Name  string
	Links []Link
}

// Content is everything the informational pages show.
type Content struct {
	Cards  []Card
	Groups []LinkGroup
	MapURL string
}
