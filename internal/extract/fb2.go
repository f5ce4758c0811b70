package extract

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// coverpageScanWindow bounds the scan after <coverpage> when no closing tag
// is found, so pathological input cannot stall the search.
const coverpageScanWindow = 500

// FB2Cover extracts the cover from a FictionBook 2 document. The file is
// treated as text, not a validated DOM: the <coverpage> element names a
// binary id via href="#ID" (or the namespaced l:href spelling), and the
// matching <binary id="ID"> element holds the image as base64. If the
// referenced binary does not exist, the first <binary> in the document is
// used instead. Any failure here is a no-cover result, never fatal to the
// caller.
func FB2Cover(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read fb2: %w", err)
	}
	doc := string(data)

	pattern := "<binary"
	if id := fb2CoverID(doc); id != "" {
		specific := `<binary id="` + id + `"`
		if strings.Contains(doc, specific) {
			pattern = specific
		}
	}

	payload, ok := fb2BinaryPayload(doc, pattern)
	if !ok {
		return nil, ErrNoCover
	}
	cover, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: binary payload is not base64: %v", ErrNoCover, err)
	}
	return cover, nil
}

// fb2CoverID returns the binary id referenced by the <coverpage> element,
// or "" if there is none.
func fb2CoverID(doc string) string {
	start := strings.Index(doc, "<coverpage>")
	if start < 0 {
		return ""
	}
	end := strings.Index(doc[start:], "</coverpage>")
	if end < 0 {
		end = coverpageScanWindow
	}
	if start+end > len(doc) {
		end = len(doc) - start
	}
	window := doc[start : start+end]

	// href="#..." also matches the l:href spelling, since the bare form is
	// a suffix of the namespaced one.
	marker := `href="#`
	i := strings.Index(window, marker)
	if i < 0 {
		return ""
	}
	rest := window[i+len(marker):]
	j := strings.IndexByte(rest, '"')
	if j < 0 {
		return ""
	}
	return rest[:j]
}

// fb2BinaryPayload finds the <binary> tag matched by pattern and returns
// the whitespace-stripped text between the opening tag and </binary>.
func fb2BinaryPayload(doc, pattern string) (string, bool) {
	pos := strings.Index(doc, pattern)
	if pos < 0 {
		return "", false
	}
	tagEnd := strings.Index(doc[pos:], ">")
	if tagEnd < 0 {
		return "", false
	}
	payloadStart := pos + tagEnd + 1
	payloadLen := strings.Index(doc[payloadStart:], "</binary>")
	if payloadLen < 0 {
		return "", false
	}

	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, doc[payloadStart:payloadStart+payloadLen])
	return clean, true
}
