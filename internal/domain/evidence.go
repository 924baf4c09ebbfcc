package domain

// EvidenceType classifies the content carried by an Evidence item.
type EvidenceType string

// Known evidence types.
const (
	EvidenceTypePicture  EvidenceType = "picture"
	EvidenceTypeDocument EvidenceType = "document"
	EvidenceTypeAudio    EvidenceType = "audio"
	EvidenceTypeNote     EvidenceType = "note"
)

// EvidenceTypes lists every valid evidence type in display order.
var EvidenceTypes = []EvidenceType{
	EvidenceTypePicture,
	EvidenceTypeDocument,
	EvidenceTypeAudio,
	EvidenceTypeNote,
}

// IsValid reports whether t is one of the known evidence types.
func (t EvidenceType) IsValid() bool {
	switch t {
	case EvidenceTypePicture, EvidenceTypeDocument, EvidenceTypeAudio, EvidenceTypeNote:
		return true
	default:
		return false
	}
}

// IsBinary reports whether evidence of this type is normally backed by an
// uploaded file rather than inline text.
func (t EvidenceType) IsBinary() bool {
	return t == EvidenceTypePicture || t == EvidenceTypeDocument || t == EvidenceTypeAudio
}

// Evidence is a single clue attached to a MysteryCase. It is owned by its case
// and never changes after the case has been created.
type Evidence struct {
	// ID is unique within the owning case and assigned by the storage backend.
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Type  EvidenceType `json:"type"`
	// Content is a URL for files, inline text for notes, or a data URI.
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	// DataAIHint is a keyword used to pick a placeholder image.
	DataAIHint string `json:"dataAiHint,omitempty"`
}
