// seehuhn.de/go/region - integer region algebra
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package region

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
)

// Serialized layout, as native-endian 32-bit words:
//
//	[selector] [left top right bottom] [run...]
//
// A negative selector is the empty region and nothing follows.  Zero is a
// rectangle, given by the bounds.  A positive selector is the number of
// run values following the bounds.

// ErrInvalidEncoding is returned when decoding malformed region data.
var ErrInvalidEncoding = errors.New("region: invalid encoding")

// SizeInMemory returns the number of bytes WriteToMemory needs for r.
func (r *Region) SizeInMemory() int {
	size := 4
	if !r.IsEmpty() {
		size += 4 * 4
		if r.IsComplex() {
			size += 4 * len(r.head.runs)
		}
	}
	return size
}

// WriteToMemory writes the serialized form of r to buf and returns the
// number of bytes written.  buf must hold at least r.SizeInMemory() bytes.
func (r *Region) WriteToMemory(buf []byte) int {
	_ = buf[r.SizeInMemory()-1] // bounds check hint
	enc := binary.NativeEndian

	if r.IsEmpty() {
		enc.PutUint32(buf, uint32(0xFFFFFFFF)) // -1
		return 4
	}

	var sel int32
	if r.IsComplex() {
		sel = int32(len(r.head.runs))
	}
	enc.PutUint32(buf[0:], uint32(sel))
	enc.PutUint32(buf[4:], uint32(int32(r.bounds.Min.X)))
	enc.PutUint32(buf[8:], uint32(int32(r.bounds.Min.Y)))
	enc.PutUint32(buf[12:], uint32(int32(r.bounds.Max.X)))
	enc.PutUint32(buf[16:], uint32(int32(r.bounds.Max.Y)))
	pos := 20
	if r.IsComplex() {
		for _, v := range r.head.runs {
			enc.PutUint32(buf[pos:], uint32(v))
			pos += 4
		}
	}
	return pos
}

// AppendBinary implements the encoding.BinaryAppender interface.
func (r *Region) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	size := r.SizeInMemory()
	b = append(b, make([]byte, size)...)
	r.WriteToMemory(b[n:])
	return b, nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r *Region) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(nil)
}

// ReadFromMemory replaces r by the region serialized at the start of data
// and returns the number of bytes consumed.  If data does not start with a
// valid region, r is left unchanged and 0 is returned.
func (r *Region) ReadFromMemory(data []byte) int {
	tmp, n, err := decodeRegion(data)
	if err != nil {
		return 0
	}
	r.Swap(tmp)
	tmp.SetEmpty()
	return n
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// The data must contain exactly one serialized region.
func (r *Region) UnmarshalBinary(data []byte) error {
	tmp, n, err := decodeRegion(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(data)-n)
	}
	r.Swap(tmp)
	tmp.SetEmpty()
	return nil
}

// decodeRegion parses one serialized region.  The data is not trusted:
// every length is checked before reading and complex runs are validated.
func decodeRegion(data []byte) (*Region, int, error) {
	enc := binary.NativeEndian
	if len(data) < 4 {
		return nil, 0, fmt.Errorf("%w: missing selector", ErrInvalidEncoding)
	}
	sel := int32(enc.Uint32(data))
	if sel < 0 {
		return &Region{}, 4, nil
	}

	if len(data) < 20 {
		return nil, 0, fmt.Errorf("%w: missing bounds", ErrInvalidEncoding)
	}
	bounds := image.Rectangle{
		Min: image.Point{X: int(int32(enc.Uint32(data[4:]))), Y: int(int32(enc.Uint32(data[8:])))},
		Max: image.Point{X: int(int32(enc.Uint32(data[12:]))), Y: int(int32(enc.Uint32(data[16:])))},
	}
	if bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y ||
		bounds.Max.X > MaxCoord || bounds.Max.Y > MaxCoord {
		return nil, 0, fmt.Errorf("%w: bad bounds %v", ErrInvalidEncoding, bounds)
	}

	if sel == 0 {
		rgn := &Region{}
		rgn.setRectangle(bounds)
		return rgn, 20, nil
	}

	count := int(sel)
	if count <= rectRegionRuns {
		return nil, 0, fmt.Errorf("%w: run count %d too small", ErrInvalidEncoding, count)
	}
	if count > (len(data)-20)/4 {
		return nil, 0, fmt.Errorf("%w: run count %d exceeds data", ErrInvalidEncoding, count)
	}

	h := allocRuns(count)
	pos := 20
	for i := range h.runs {
		h.runs[i] = int32(enc.Uint32(data[pos:]))
		pos += 4
	}
	if err := validateRuns(h.runs); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	st := h.updateStats()
	if st.bounds != bounds {
		return nil, 0, fmt.Errorf("%w: bounds %v do not match runs %v",
			ErrInvalidEncoding, bounds, st.bounds)
	}
	return &Region{bounds: bounds, head: h}, pos, nil
}
