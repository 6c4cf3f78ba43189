package models

// Item is the unit submitted to and returned by the catalog service.
// An item built by the transformer carries no ID or Link; the service
// assigns both on creation.
type Item struct {
	ID       string    `json:"id,omitempty"`
	ParentID string    `json:"parentId,omitempty"`
	Title    string    `json:"title"`
	WebLinks []WebLink `json:"webLinks,omitempty"`
	Contacts []Contact `json:"contacts,omitempty"`
	Link     *ItemLink `json:"link,omitempty"`
}

// ItemLink holds the canonical self-URL of a stored item.
type ItemLink struct {
	URL string `json:"url"`
}
