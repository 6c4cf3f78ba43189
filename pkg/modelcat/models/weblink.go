package models

// Web link titles assigned by the loader.
const (
	// TitleReferenceLink marks the primary descriptive URL of a model.
	TitleReferenceLink = "Model Reference Link"
	// TitleOutputData marks a link to model output data.
	TitleOutputData = "Model Output Data"
)

// WebLink is one web-link document of a catalog item.
type WebLink struct {
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	URI       string `json:"uri"`
	Rel       string `json:"rel"`
	Title     string `json:"title"`
	Hidden    bool   `json:"hidden"`
}
