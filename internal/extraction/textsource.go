package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// TextExtractor turns a stored document into a single opaque string. Binary
// formats (PDF, DOCX, OCR) plug in behind this interface; the pipeline never
// parses them itself.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// PlainTextExtractor reads plain-text documents, decoding UTF-8 with a
// Latin-1 fallback for legacy files.
type PlainTextExtractor struct{}

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "txt", "md", "text":
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if utf8.Valid(data) {
		return strings.TrimSpace(string(data)), nil
	}
	return strings.TrimSpace(decodeLatin1(data)), nil
}

func decodeLatin1(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
