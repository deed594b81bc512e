package fst

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Footer layout (§6): a fixed-width trailer so the image is
// self-describing -- a reader needs nothing but the byte slice itself
// to find the root and validate the body.
//
//	magic     uint32  "GFST"
//	version   uint32
//	count     uint64  number of keys
//	root      uint64  byte offset of the root node
//	checksum  uint64  xxhash64 of everything preceding the checksum
//
// All fields are big-endian, matching the header convention used by
// on-disk constant databases in the same family (e.g. opencoff/go-chd's
// DBWriter header).
const (
	magic         uint32 = 0x47465354 // "GFST"
	formatVersion uint32 = 1
	footerSize           = 4 + 4 + 8 + 8 + 8
)

func appendFooter(buf []byte, root, count uint64) []byte {
	var hdr [footerSize - 8]byte
	binary.BigEndian.PutUint32(hdr[0:4], magic)
	binary.BigEndian.PutUint32(hdr[4:8], formatVersion)
	binary.BigEndian.PutUint64(hdr[8:16], count)
	binary.BigEndian.PutUint64(hdr[16:24], root)

	buf = append(buf, hdr[:]...)
	sum := xxhash.Sum64(buf)
	var cksum [8]byte
	binary.BigEndian.PutUint64(cksum[:], sum)
	return append(buf, cksum[:]...)
}

// footerInfo holds the parsed trailer of an image.
type footerInfo struct {
	count      uint64
	root       uint64
	bodyLength int
}

// parseFooter validates and decodes the trailing footer of data. The
// total length is recovered from len(data) itself, per §6.
func parseFooter(data []byte) (footerInfo, error) {
	if len(data) < footerSize {
		return footerInfo{}, ErrFormat
	}
	bodyEnd := len(data) - footerSize
	hdr := data[bodyEnd : len(data)-8]
	if binary.BigEndian.Uint32(hdr[0:4]) != magic {
		return footerInfo{}, ErrFormat
	}
	if binary.BigEndian.Uint32(hdr[4:8]) != formatVersion {
		return footerInfo{}, ErrFormat
	}
	count := binary.BigEndian.Uint64(hdr[8:16])
	root := binary.BigEndian.Uint64(hdr[16:24])

	wantSum := binary.BigEndian.Uint64(data[len(data)-8:])
	gotSum := xxhash.Sum64(data[:len(data)-8])
	if wantSum != gotSum {
		return footerInfo{}, ErrFormat
	}
	if root != 0 && root >= uint64(bodyEnd) {
		return footerInfo{}, ErrFormat
	}
	return footerInfo{count: count, root: root, bodyLength: bodyEnd}, nil
}
