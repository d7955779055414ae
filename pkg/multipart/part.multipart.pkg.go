package multipart

type PartKindEnum string

const (
	TEXT   PartKindEnum = "text"
	JSON   PartKindEnum = "json"
	BINARY PartKindEnum = "binary"
)

func (e PartKindEnum) ToString() string {
	switch e {
	case TEXT:
		return "text"
	case JSON:
		return "json"
	case BINARY:
		return "binary"
	default:
		return ""
	}
}

func (e PartKindEnum) IsValid() bool {
	switch e {
	case TEXT, JSON, BINARY:
		return true
	}
	return false
}

// Part is one named unit of a multipart body.
//
// Filename is rendered only for BINARY parts and ContentType is rendered for
// every kind except TEXT.
type Part struct {
	Kind        PartKindEnum
	Name        string
	Filename    string
	ContentType string
	Content     []byte
}
