package types

// BufferedFile is a file part read fully into memory by the multipart
// middleware.
type BufferedFile struct {
	FieldName    string `json:"fieldName" validate:"required"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimetype" validate:"required"`
	Size         int    `json:"size"`
	Buffer       []byte `json:"-"`
}

type BufferedFiles map[string][]BufferedFile

// First returns the first file received under field.
func (f BufferedFiles) First(field string) (BufferedFile, bool) {
	files := f[field]
	if len(files) == 0 {
		return BufferedFile{}, false
	}
	return files[0], true
}

// JSONFields holds the raw bytes of form fields declared as JSON, keyed by
// field name.
type JSONFields map[string][]byte
