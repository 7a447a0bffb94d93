package util

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/resume-matcher/internal/model"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError rejects a file before extraction is attempted.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q (want .txt, .docx or .pdf)", e.Ext)
}

// ExtractionError reports a corrupted or unreadable document.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// DetectFormat resolves the file extension to a tagged format once at
// the upload boundary.
func DetectFormat(fileName string) (model.Format, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".txt":
		return model.FormatPlainText, nil
	case ".docx":
		return model.FormatStructuredDocument, nil
	case ".pdf":
		return model.FormatPageBased, nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// Extract converts document bytes into plain text. It is a pure
// function of the byte content; line structure is preserved for the
// formatting checks downstream.
func Extract(data []byte, format model.Format, fileName string) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case model.FormatPlainText:
		text = string(bytes.ToValidUTF8(data, []byte("�")))
	case model.FormatStructuredDocument:
		text, err = extractDocx(data)
	case model.FormatPageBased:
		text, err = extractPDF(data)
	default:
		return "", &UnsupportedFormatError{Ext: string(format)}
	}
	if err != nil {
		return "", &ExtractionError{FileName: fileName, Err: err}
	}
	return cleanText(text), nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some corrupted files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupted pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		// Image-only pages yield no text and are skipped silently.
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText pulls the visible run text out of a document.xml body,
// joining paragraphs with newlines.
func docxXMLToText(content string) string {
	var sb strings.Builder
	rest := content
	for {
		start := indexTextRun(rest)
		if start == -1 {
			break
		}
		// Paragraph boundaries seen before this run become newlines.
		if strings.Contains(rest[:start], "</w:p>") && sb.Len() > 0 {
			sb.WriteString("\n")
		}
		rest = rest[start:]
		open := strings.Index(rest, ">")
		if open == -1 {
			break
		}
		if strings.HasSuffix(rest[:open], "/") {
			// Self-closing empty run.
			rest = rest[open+1:]
			continue
		}
		rest = rest[open+1:]
		end := strings.Index(rest, "</w:t>")
		if end == -1 {
			break
		}
		sb.WriteString(unescapeXML(rest[:end]))
		rest = rest[end:]
	}
	return sb.String()
}

// indexTextRun finds the next <w:t> or <w:t ...> tag, skipping other
// tags that share the prefix such as <w:tbl> and <w:tc>.
func indexTextRun(s string) int {
	for off := 0; ; {
		i := strings.Index(s[off:], "<w:t")
		if i == -1 {
			return -1
		}
		i += off
		rest := s[i+len("<w:t"):]
		if rest == "" {
			return -1
		}
		if rest[0] == '>' || rest[0] == ' ' || rest[0] == '/' {
			return i
		}
		off = i + len("<w:t")
	}
}

func unescapeXML(s string) string {
	r := strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
	return r.Replace(s)
}

// cleanText drops NUL bytes, normalizes line endings and trims the
// result. In-line whitespace is kept so layout heuristics still work.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
