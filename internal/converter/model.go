package converter

// The JSON tags below are the ingestion contract of the downstream indexing
// library and must not change, whatever the internal field names do.

type Entity struct {
	EntityName  string                 `json:"entity_name"`
	EntityType  string                 `json:"entity_type"`
	Description string                 `json:"description"`
	SourceID    string                 `json:"source_id"`
	Properties  map[string]interface{} `json:"properties,omitempty"`
}

type Relation struct {
	SrcID       string  `json:"src_id"`
	TgtID       string  `json:"tgt_id"`
	Description string  `json:"description"`
	Keywords    string  `json:"keywords"`
	Weight      float64 `json:"weight"`
	SourceID    string  `json:"source_id"`
}

// Chunk is the text block derived from a node for vector search. One chunk
// per node; ChunkOrderIndex stays 0 until node text is ever split.
type Chunk struct {
	ChunkID         string `json:"chunk_id"`
	Content         string `json:"content"`
	SourceID        string `json:"source_id"`
	Tokens          int    `json:"tokens"`
	ChunkOrderIndex int    `json:"chunk_order_index"`
}

// KnowledgeGraph is the full three-sequence import structure. Slices are
// always non-nil so an empty graph serializes as [] rather than null.
type KnowledgeGraph struct {
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
	Chunks    []Chunk    `json:"chunks"`
}
