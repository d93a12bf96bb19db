package unstructured

type ChunkingStrategy string

const (
	ChunkingStrategyNone    ChunkingStrategy = "none"
	ChunkingStrategyBasic   ChunkingStrategy = "basic"
	ChunkingStrategyByTitle ChunkingStrategy = "by_title"
)

type ElementType string

const (
	ElementTypeNarrativeText    ElementType = "NarrativeText"
	ElementTypeCompositeElement ElementType = "CompositeElement"
)

type Partition struct {
	ID   string      `json:"element_id"`
	Type ElementType `json:"type"`
	Text string      `json:"text"`

	Metadata PartitionMetadata `json:"metadata"`
}

type PartitionMetadata struct {
	FileName string `json:"filename,omitempty"`
	FileType string `json:"filetype,omitempty"`

	PageNumber int `json:"page_number,omitempty"`
}
