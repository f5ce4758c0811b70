package extract

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Palm database / MOBI layout constants.
const (
	pdbHeaderSize      = 78  // Palm database header
	pdbRecordEntrySize = 8   // offset(4) + attributes/uniqueID(4)
	mobiHeaderSize     = 256 // record 0 header prefix we parse
	exthFlagPresent    = 0x40
	exthCoverOffset    = 201 // EXTH record type: cover image record index
)

var (
	pdbTypeCreator = []byte("BOOKMOBI")
	mobiMagic      = []byte("MOBI")
	exthMagic      = []byte("EXTH")
)

// Raster signatures accepted for the resolved cover record.
var (
	sigJPEG = []byte{0xFF, 0xD8, 0xFF}
	sigPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
	sigGIF  = []byte("GIF")
)

// MOBICover extracts the cover image record from a MOBI/AZW family file.
//
// The Palm database header gives a record offset table; record 0 holds the
// MOBI header whose EXTH block may carry an explicit CoverOffset (type 201)
// relative to the first-image index at header offset 108. Without a type
// 201 record the first-image index itself is used. The resolved record is
// accepted only if it starts with a JPEG, PNG, or GIF signature.
//
// All reads are length-validated; a short read anywhere in the header walk
// is a format error, not a retry.
func MOBICover(r io.ReadSeeker) ([]byte, error) {
	header := make([]byte, pdbHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: short database header", ErrInvalidContainer)
	}
	if !bytes.Equal(header[60:68], pdbTypeCreator) {
		return nil, fmt.Errorf("%w: not a Mobipocket database", ErrInvalidContainer)
	}

	numRecords := int(binary.BigEndian.Uint16(header[76:78]))
	if numRecords == 0 {
		return nil, fmt.Errorf("%w: empty record table", ErrInvalidContainer)
	}

	offsets := make([]uint32, numRecords)
	entry := make([]byte, pdbRecordEntrySize)
	for i := range offsets {
		if _, err := io.ReadFull(r, entry); err != nil {
			return nil, fmt.Errorf("%w: short record table", ErrInvalidContainer)
		}
		offsets[i] = binary.BigEndian.Uint32(entry[:4])
	}

	if _, err := r.Seek(int64(offsets[0]), io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek record 0: %v", ErrInvalidContainer, err)
	}
	mobiHeader := make([]byte, mobiHeaderSize)
	if _, err := io.ReadFull(r, mobiHeader); err != nil {
		return nil, fmt.Errorf("%w: short MOBI header", ErrInvalidContainer)
	}
	if !bytes.Equal(mobiHeader[16:20], mobiMagic) {
		return nil, fmt.Errorf("%w: MOBI magic missing", ErrInvalidContainer)
	}

	headerLength := binary.BigEndian.Uint32(mobiHeader[20:24])
	firstImageIndex := binary.BigEndian.Uint32(mobiHeader[108:112])
	exthFlags := binary.BigEndian.Uint32(mobiHeader[128:132])
	if exthFlags&exthFlagPresent == 0 {
		return nil, fmt.Errorf("%w: no EXTH metadata block", ErrNoCover)
	}

	// EXTH block follows the 16-byte PalmDOC prefix plus the MOBI header.
	exthStart := int64(offsets[0]) + 16 + int64(headerLength)
	if _, err := r.Seek(exthStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek EXTH: %v", ErrInvalidContainer, err)
	}

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, exthMagic) {
		return nil, fmt.Errorf("%w: EXTH magic missing", ErrInvalidContainer)
	}

	var lenAndCount [8]byte // total length (unused) + record count
	if _, err := io.ReadFull(r, lenAndCount[:]); err != nil {
		return nil, fmt.Errorf("%w: short EXTH header", ErrInvalidContainer)
	}
	exthCount := int(binary.BigEndian.Uint32(lenAndCount[4:8]))

	coverOffset := int64(-1)
	var recHeader [8]byte
	for i := 0; i < exthCount; i++ {
		if _, err := io.ReadFull(r, recHeader[:]); err != nil {
			break
		}
		recType := binary.BigEndian.Uint32(recHeader[0:4])
		recLen := int64(binary.BigEndian.Uint32(recHeader[4:8]))
		dataLen := recLen - 8
		if dataLen < 0 {
			dataLen = 0
		}

		if recType == exthCoverOffset && dataLen >= 4 {
			var val [4]byte
			if _, err := io.ReadFull(r, val[:]); err != nil {
				break
			}
			coverOffset = int64(binary.BigEndian.Uint32(val[:]))
			dataLen -= 4
		}
		if dataLen > 0 {
			if _, err := r.Seek(dataLen, io.SeekCurrent); err != nil {
				break
			}
		}
	}

	coverRecord := int64(firstImageIndex)
	if coverOffset >= 0 {
		coverRecord += coverOffset
	}
	if coverRecord < 0 || coverRecord >= int64(numRecords) {
		return nil, fmt.Errorf("%w: cover record index %d out of range", ErrNoCover, coverRecord)
	}

	start := int64(offsets[coverRecord])
	var end int64
	if coverRecord+1 < int64(numRecords) {
		end = int64(offsets[coverRecord+1])
	} else {
		var err error
		end, err = r.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: seek end: %v", ErrInvalidContainer, err)
		}
	}
	if end < start {
		return nil, fmt.Errorf("%w: record table not monotonic", ErrInvalidContainer)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek cover record: %v", ErrInvalidContainer, err)
	}
	cover := make([]byte, end-start)
	if _, err := io.ReadFull(r, cover); err != nil {
		return nil, fmt.Errorf("%w: short cover record", ErrInvalidContainer)
	}

	if bytes.HasPrefix(cover, sigJPEG) || bytes.HasPrefix(cover, sigPNG) || bytes.HasPrefix(cover, sigGIF) {
		return cover, nil
	}
	return nil, fmt.Errorf("%w: cover record is not a raster image", ErrNoCover)
}
