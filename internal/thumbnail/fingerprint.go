package thumbnail

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"ebook-thumbnailer/internal/logging"
)

const (
	// fingerprintWindow is the number of bytes hashed per sampled offset.
	fingerprintWindow = 1024
	// fingerprintStep is the base for the exponential offset schedule:
	// step << (2*i) for i = 0..10, preceded by a fixed initial offset.
	fingerprintStep          = 1024
	fingerprintInitialOffset = 256
	fingerprintRounds        = 10
)

// CacheKey derives the content fingerprint for a thumbnail request. The
// digest is seeded with the extension and the requested size, then fed
// 1024-byte windows sampled at exponentially growing file offsets, so the
// key stays stable without ever reading a whole file. Two requests for
// byte-identical content with the same extension and size always produce
// the same key; a changed source file produces a different key, which is
// how stale cache entries are orphaned rather than invalidated.
//
// The last sampled offset is 1 GiB; files differing only past the sampled
// windows can collide. Accepted approximation, not a bug.
func CacheKey(path, ext string, size int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.Warn("failed to close %s: %v", path, err)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	fileLen := info.Size()

	h := md5.New()
	io.WriteString(h, ext)
	var sizeBytes [4]byte
	binary.LittleEndian.PutUint32(sizeBytes[:], uint32(size))
	h.Write(sizeBytes[:])

	window := make([]byte, fingerprintWindow)
	for i := -1; i <= fingerprintRounds; i++ {
		var pos int64
		if i < 0 {
			pos = fingerprintInitialOffset
		} else {
			pos = int64(fingerprintStep) << (2 * i)
		}

		start := min(pos, fileLen)
		if start >= fileLen {
			break
		}
		end := min(start+fingerprintWindow, fileLen)

		if _, err := f.Seek(start, io.SeekStart); err != nil {
			return "", fmt.Errorf("seek %s: %w", path, err)
		}
		n := int(end - start)
		if _, err := io.ReadFull(f, window[:n]); err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		h.Write(window[:n])
	}

	return fmt.Sprintf("%x.png", h.Sum(nil)), nil
}
