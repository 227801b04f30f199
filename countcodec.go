// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package diverseseq

import (
	"bufio"
	"encoding/binary"
	"io"
)

// EncodeCounts writes v's nonzero entries to w as a sparse (gap, value)
// stream: a length prefix, a nonzero-count prefix, then that many (gap,
// value) pairs, each a standard varint — the gap since the previous
// nonzero index, then the count itself. A k-mer counts vector is
// overwhelmingly zero once k grows past a handful of bases, so this is far
// smaller than writing every entry, and it round-trips back to an
// identical vector via DecodeCounts.
//
// The nonzero count makes the stream self-delimiting rather than relying on
// io.EOF to mark the end of the pairs: WriteRecords packs many of these back
// to back on one io.Writer, and an EOF-terminated reader would have no way
// to know where one record's counts end and the next one's length prefix
// begins.
func EncodeCounts(w io.Writer, v *FreqVec[int64]) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	var indices []int
	var values []int64
	v.IterNonzero(func(i int, val int64) {
		indices = append(indices, i)
		values = append(values, val)
	})

	if err := binary.Write(bw, binary.BigEndian, uint64(v.Len())); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.BigEndian, uint64(len(indices))); err != nil {
		return err
	}

	buf := make([]byte, binary.MaxVarintLen64)
	var last uint64
	for k, i := range indices {
		gap := uint64(i) - last
		n := binary.PutUvarint(buf, gap)
		if _, err := bw.Write(buf[:n]); err != nil {
			return err
		}
		n = binary.PutUvarint(buf, uint64(values[k]))
		if _, err := bw.Write(buf[:n]); err != nil {
			return err
		}
		last = uint64(i)
	}
	return bw.Flush()
}

// DecodeCounts reads the format EncodeCounts writes. When r is already a
// *bufio.Reader (as ReadRecords passes it) it is reused directly
// instead of wrapped again, so a multi-record stream shares one buffer and
// reading one record's counts never pulls lookahead bytes out from under
// the next record's header.
func DecodeCounts(r io.Reader) (*FreqVec[int64], error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var length, nonzero uint64
	if err := binary.Read(br, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.BigEndian, &nonzero); err != nil {
		return nil, err
	}
	v := NewFreqVec[int64](int(length))

	var idx uint64
	for n := uint64(0); n < nonzero; n++ {
		gap, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, err
		}
		val, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, err
		}
		idx += gap
		if idx >= length {
			return nil, NewValueError("decoded index exceeds vector length")
		}
		v.Set(int(idx), int64(val))
	}
	return v, nil
}
