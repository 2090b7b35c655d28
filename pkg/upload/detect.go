package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the document types résumés usually arrive in
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// DocumentCheck describes how an upload compares to its claimed type.
// It is informational only; staging never rejects a file.
type DocumentCheck struct {
	Extension    string
	ContentMatch bool // content starts with a known signature for Extension
	IsPDF        bool
}

// CheckDocument inspects the filename extension and leading bytes of data.
func CheckDocument(filename string, data []byte) DocumentCheck {
	ext := strings.ToLower(filepath.Ext(filename))
	check := DocumentCheck{
		Extension: ext,
		IsPDF:     hasSignature(".pdf", data),
	}
	check.ContentMatch = hasSignature(ext, data)
	return check
}

func hasSignature(ext string, data []byte) bool {
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
