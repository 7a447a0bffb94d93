package model

// Format is the document format resolved once at the upload boundary.
type Format string

const (
	FormatPlainText          Format = "plain_text"
	FormatStructuredDocument Format = "structured_document"
	FormatPageBased          Format = "page_based"
)

type Document struct {
	FileName string `json:"file_name"`
	Format   Format `json:"format"`
	Raw      []byte `json:"-"`
	// Text is derived from Raw once at extraction time and never mutated.
	Text string `json:"text"`
}
