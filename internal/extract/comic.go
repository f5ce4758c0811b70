package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"sort"
	"strings"

	"ebook-thumbnailer/internal/booktypes"
)

// ComicCover extracts the first page of a comic book archive as the cover.
// Entries are sorted lexicographically by name, the standard "page 1 first"
// convention for scanned comics.
//
// CBR is accepted by extension but parsed with the same zip logic; a real
// RAR payload fails to open and surfaces as a container error.
func ComicCover(r io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}

	var pages []*zip.File
	for _, f := range zr.File {
		if booktypes.IsImageName(strings.ToLower(f.Name)) {
			pages = append(pages, f)
		}
	}
	if len(pages) == 0 {
		return nil, ErrNoCover
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Name < pages[j].Name
	})
	return readZipEntry(pages[0])
}
