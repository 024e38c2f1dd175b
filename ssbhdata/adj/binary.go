package adj

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize = 4
	entrySize  = 8
)

type entryHeader struct {
	MeshObjectIndex   int32
	IndexBufferOffset uint32
}

// Read parses the binary layout: a u32 entry count, count entry headers of
// (i32 mesh object index, u32 byte offset into the index buffer), then the i16
// index buffer up to the end of the input. An entry spans from its offset to
// the offset of the next entry. A trailing odd byte is padding.
func Read(r io.Reader) (AdjData, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return AdjData{}, truncated(err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return AdjData{}, err
	}

	if uint64(len(rest)) < uint64(count)*entrySize {
		return AdjData{}, ErrTruncated
	}

	headers := make([]entryHeader, count)
	for i := range headers {
		headers[i] = entryHeader{
			MeshObjectIndex:   int32(binary.LittleEndian.Uint32(rest[i*entrySize:])),
			IndexBufferOffset: binary.LittleEndian.Uint32(rest[i*entrySize+4:]),
		}
	}

	raw := rest[len(headers)*entrySize:]
	buffer := make([]int16, len(raw)/2)
	for i := range buffer {
		buffer[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}

	out := AdjData{Entries: make([]AdjEntryData, len(headers))}

	for i, h := range headers {
		if h.MeshObjectIndex < 0 {
			return AdjData{}, fmt.Errorf("entry %d: %w: %d", i, ErrIndexRange, h.MeshObjectIndex)
		}

		end := uint32(len(buffer) * 2)
		if i+1 < len(headers) {
			end = headers[i+1].IndexBufferOffset
		}

		start := h.IndexBufferOffset
		if start%2 != 0 || end%2 != 0 || start > end || int(end/2) > len(buffer) {
			return AdjData{}, fmt.Errorf("entry %d: %w: %d", i, ErrInvalidOffset, start)
		}

		out.Entries[i] = AdjEntryData{
			MeshObjectIndex: uint64(h.MeshObjectIndex),
			VertexAdjacency: append([]int16{}, buffer[start/2:end/2]...),
		}
	}

	return out, nil
}

// Write serializes a in the canonical binary layout: entry buffers are packed
// in entry order without padding.
func Write(w io.Writer, a AdjData) error {
	headers := make([]entryHeader, len(a.Entries))
	offset := uint64(0)

	for i, e := range a.Entries {
		if e.MeshObjectIndex > math.MaxInt32 {
			return fmt.Errorf("entry %d: %w: %d", i, ErrIndexRange, e.MeshObjectIndex)
		}

		if offset > math.MaxUint32 {
			return fmt.Errorf("entry %d: %w: %d", i, ErrInvalidOffset, offset)
		}

		headers[i] = entryHeader{
			MeshObjectIndex:   int32(e.MeshObjectIndex),
			IndexBufferOffset: uint32(offset),
		}
		offset += uint64(len(e.VertexAdjacency)) * 2
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(headers))); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, headers); err != nil {
		return err
	}

	for _, e := range a.Entries {
		if err := binary.Write(w, binary.LittleEndian, e.VertexAdjacency); err != nil {
			return err
		}
	}

	return nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}

	return err
}
