package extract

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"ebook-thumbnailer/internal/booktypes"
	"ebook-thumbnailer/internal/logging"
)

// maxEntrySize is the maximum decompressed size accepted for a single
// archive entry. Guards against zip bombs.
const maxEntrySize int64 = 256 * 1024 * 1024

// Cover opens the file at path and extracts raw cover-image bytes using the
// parser for format. The size parameter is only consulted by the TXT
// placeholder, which synthesizes its image at the requested dimensions.
func Cover(path string, format booktypes.Format, size int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close %s: %v", path, err)
		}
	}()

	switch format {
	case booktypes.FormatEPUB:
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return EPUBCover(f, info.Size())
	case booktypes.FormatMOBI:
		return MOBICover(f)
	case booktypes.FormatComic:
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return ComicCover(f, info.Size())
	case booktypes.FormatFB2:
		return FB2Cover(f)
	case booktypes.FormatText:
		return TextCover(f, size)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// readZipEntry decompresses a single archive entry, bounded by maxEntrySize.
func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open entry %s: %v", ErrInvalidContainer, f.Name, err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logging.Warn("failed to close archive entry %s: %v", f.Name, err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read entry %s: %v", ErrInvalidContainer, f.Name, err)
	}
	return data, nil
}

// readZipName reads the entry with the exact given name from the archive.
func readZipName(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	return nil, fmt.Errorf("%w: entry %s not in archive", ErrNoCover, name)
}
