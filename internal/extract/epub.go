package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"ebook-thumbnailer/internal/booktypes"
	"ebook-thumbnailer/internal/logging"
)

// opfImageTypes are the manifest media-types accepted by the first-image
// fallback of the manifest pass.
var opfImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// EPUBCover extracts cover bytes from an EPUB archive. Three passes, first
// success wins:
//
//  1. Entries whose lowercased name is an image and contains "cover" or
//     "front", ranked exact-name matches first, then by declared size.
//  2. META-INF/container.xml → OPF manifest: an explicit cover reference
//     (<meta name="cover"> or properties="cover-image"), else the first
//     image-typed manifest item in declaration order.
//  3. The single largest image entry in the archive.
//
// Publishers encode cover metadata inconsistently; the layered heuristic
// maximizes hit rate without a full OPF parser.
func EPUBCover(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}

	// Pass 1: cover-named image entries.
	type candidate struct {
		file *zip.File
		name string
		size uint64
	}
	var candidates []candidate
	for _, f := range zr.File {
		name := strings.ToLower(f.Name)
		if booktypes.IsImageName(name) &&
			(strings.Contains(name, "cover") || strings.Contains(name, "front")) {
			candidates = append(candidates, candidate{f, name, f.UncompressedSize64})
		}
	}

	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			iExact := isExactCoverName(candidates[i].name)
			jExact := isExactCoverName(candidates[j].name)
			if iExact != jExact {
				return iExact
			}
			// Declared size is a proxy for image quality; approximate
			// for compressed entries but preserved for compatibility.
			return candidates[i].size > candidates[j].size
		})
		logging.Debug("EPUB cover by name heuristic: %s", candidates[0].file.Name)
		return readZipEntry(candidates[0].file)
	}

	// Pass 2: OPF manifest metadata.
	if data, err := manifestCover(zr); err == nil {
		return data, nil
	}

	// Pass 3: largest image entry.
	var largest *zip.File
	for _, f := range zr.File {
		if !booktypes.IsImageName(strings.ToLower(f.Name)) {
			continue
		}
		if largest == nil || f.UncompressedSize64 > largest.UncompressedSize64 {
			largest = f
		}
	}
	if largest != nil {
		logging.Debug("EPUB cover by largest-image fallback: %s", largest.Name)
		return readZipEntry(largest)
	}

	return nil, ErrNoCover
}

// isExactCoverName reports whether the entry name is an exact cover match
// ("cover.jpg", "images/cover.png") as opposed to a partial one
// ("cover_full.png", "frontispiece.jpg").
func isExactCoverName(name string) bool {
	return strings.Contains(name, "cover.") || strings.HasSuffix(name, "cover")
}

// manifestCover resolves the cover through META-INF/container.xml and the
// OPF package document.
func manifestCover(zr *zip.Reader) ([]byte, error) {
	container, err := readZipName(zr, "META-INF/container.xml")
	if err != nil {
		return nil, err
	}

	opfPath := tagAttr(string(container), "rootfile", "full-path")
	if opfPath == "" {
		return nil, ErrNoCover
	}

	opfData, err := readZipName(zr, opfPath)
	if err != nil {
		return nil, err
	}
	opf := string(opfData)
	base := path.Dir(opfPath)

	if id := opfCoverID(opf); id != "" {
		if href := opfHrefByID(opf, id); href != "" {
			if data, err := readZipName(zr, resolveHref(base, href)); err == nil {
				logging.Debug("EPUB cover by manifest id %q: %s", id, href)
				return data, nil
			}
		}
	}

	if href := opfFirstImageItem(opf); href != "" {
		if data, err := readZipName(zr, resolveHref(base, href)); err == nil {
			logging.Debug("EPUB cover by first manifest image: %s", href)
			return data, nil
		}
	}

	return nil, ErrNoCover
}

// resolveHref maps a manifest href to an archive path relative to the OPF's
// directory. Hrefs use forward slashes, as do zip entry names.
func resolveHref(base, href string) string {
	if base == "." || base == "" {
		return path.Clean(href)
	}
	return path.Join(base, href)
}

// opfCoverID finds the manifest id of the cover item, via either an EPUB 2
// <meta name="cover" content="ID"/> declaration or an EPUB 3 item carrying
// properties="cover-image".
func opfCoverID(opf string) string {
	if pos := strings.Index(opf, `name="cover"`); pos >= 0 {
		start := max(pos-50, 0)
		end := min(pos+100, len(opf))
		if v := attrValue(opf[start:end], "content"); v != "" {
			return v
		}
	}

	if pos := strings.Index(opf, `properties="cover-image"`); pos >= 0 {
		// The id attribute conventionally precedes properties; scan the
		// window before the match backwards.
		start := max(pos-200, 0)
		window := opf[start:pos]
		if i := strings.LastIndex(window, `id="`); i >= 0 {
			rest := window[i+len(`id="`):]
			if j := strings.IndexByte(rest, '"'); j >= 0 {
				return rest[:j]
			}
		}
	}

	return ""
}

// opfHrefByID returns the href attribute of the manifest item with the
// given id.
func opfHrefByID(opf, id string) string {
	pos := strings.Index(opf, `id="`+id+`"`)
	if pos < 0 {
		return ""
	}
	start := max(pos-10, 0)
	end := min(pos+200, len(opf))
	return attrValue(opf[start:end], "href")
}

// opfFirstImageItem returns the href of the first manifest item, in
// declaration order, whose media-type is a raster image.
func opfFirstImageItem(opf string) string {
	mStart := strings.Index(opf, "<manifest")
	if mStart < 0 {
		return ""
	}
	mEnd := strings.Index(opf[mStart:], "</manifest>")
	if mEnd < 0 {
		return ""
	}
	manifest := opf[mStart : mStart+mEnd]

	for {
		i := strings.Index(manifest, "<item")
		if i < 0 {
			return ""
		}
		tagEnd := strings.Index(manifest[i:], ">")
		if tagEnd < 0 {
			return ""
		}
		tag := manifest[i : i+tagEnd]
		if opfImageTypes[attrValue(tag, "media-type")] {
			if href := attrValue(tag, "href"); href != "" {
				return href
			}
		}
		manifest = manifest[i+tagEnd:]
	}
}

// tagAttr returns the value of attr on the first occurrence of <tag ...>
// in the document.
func tagAttr(doc, tag, attr string) string {
	pos := strings.Index(doc, "<"+tag)
	if pos < 0 {
		return ""
	}
	end := strings.Index(doc[pos:], ">")
	if end < 0 {
		end = min(500, len(doc)-pos)
	}
	return attrValue(doc[pos:pos+end], attr)
}

// attrValue extracts attr="value" from a window of text. Only the
// double-quoted spelling is recognized.
func attrValue(window, attr string) string {
	marker := attr + `="`
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
