package api

type Segment struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
}

type DocumentsRequest struct {
	Model string `json:"model,omitempty"`

	Texts    []string         `json:"texts"`
	Metadata []map[string]any `json:"metadata,omitempty"`

	FileName string `json:"file_name,omitempty"`

	SegmentLength  *int `json:"segment_length,omitempty"`
	SegmentOverlap *int `json:"segment_overlap,omitempty"`
}

type Document struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type ExtractedDocument struct {
	Text string `json:"text,omitempty"`

	Pages []Page `json:"pages,omitempty"`
}

type Page struct {
	Page int    `json:"page,omitempty"`
	Text string `json:"text,omitempty"`
}
