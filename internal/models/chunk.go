package models

// Metadata keys attached to chunks during processing.
const (
	MetaSource       = "source"
	MetaTitle        = "title"
	MetaDescription  = "description"
	MetaSelectorUsed = "selector_used"
	MetaContentType  = "content_type"
	MetaSection      = "section"
	MetaH1           = "H1"
	MetaH2           = "H2"
	MetaH3           = "H3"
)

// Chunk is the unit of text that gets embedded, indexed and retrieved.
type Chunk struct {
	PageContent string            `json:"page_content"`
	Metadata    map[string]string `json:"metadata"`
}

// ScoredChunk is a chunk returned from a similarity query together with its
// cosine similarity to the query vector.
type ScoredChunk struct {
	Chunk
	Score float32
}

// Page is the raw extraction result for a single URL before markdown
// conversion.
type Page struct {
	URL          string
	HTML         string
	Title        string
	Description  string
	SelectorUsed string
}
