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
	"fmt"
	"io"
)

// MainVersion is the main version number of the Matrix binary format.
const MainVersion uint8 = 1

// MinorVersion is the minor version number of the Matrix binary format.
const MinorVersion uint8 = 0

// Magic identifies a diverseseq Matrix binary file.
var Magic = [8]byte{'.', 'd', 'v', 's', 'q', 'm', 't', 'x'}

// ErrInvalidFileFormat means the magic number did not match.
var ErrInvalidFileFormat = NewValueError("invalid binary matrix file format")

// ErrVersionMismatch means the file was written by an incompatible
// MainVersion.
var ErrVersionMismatch = NewValueError("matrix file main version mismatch")

var be = binary.BigEndian

// Header carries a Matrix binary file's metadata: its format version and
// the number of named records it covers.
type Header struct {
	MainVersion  uint8
	MinorVersion uint8
	N            uint32
}

func (h Header) String() string {
	return fmt.Sprintf("diverseseq matrix file v%d.%d, N=%d", h.MainVersion, h.MinorVersion, h.N)
}

// WriteMatrix serializes m to w: magic, header, the names (length-prefixed
// strings) in order, then every Values[i][j] for j > i (the matrix is
// symmetric with a zero diagonal, so only the upper triangle is stored).
// Compression, if wanted, is the caller's concern via klauspost/pgzip
// around w, matching how the CLI host opens every other output stream.
func WriteMatrix(w io.Writer, m *Matrix) error {
	if err := binary.Write(w, be, Magic); err != nil {
		return err
	}
	header := Header{MainVersion: MainVersion, MinorVersion: MinorVersion, N: uint32(len(m.Names))}
	if err := binary.Write(w, be, header); err != nil {
		return err
	}
	for _, name := range m.Names {
		if err := binary.Write(w, be, uint32(len(name))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, name); err != nil {
			return err
		}
	}
	for i := 0; i < len(m.Names); i++ {
		for j := i + 1; j < len(m.Names); j++ {
			if err := binary.Write(w, be, m.Values[i][j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadMatrix deserializes a Matrix written by WriteMatrix.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	var magic [8]byte
	if err := binary.Read(r, be, &magic); err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrInvalidFileFormat
	}

	var header Header
	if err := binary.Read(r, be, &header); err != nil {
		return nil, err
	}
	if header.MainVersion != MainVersion {
		return nil, ErrVersionMismatch
	}

	names := make([]string, header.N)
	for i := range names {
		var l uint32
		if err := binary.Read(r, be, &l); err != nil {
			return nil, err
		}
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		names[i] = string(buf)
	}

	m := NewMatrix(names)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			var v float64
			if err := binary.Read(r, be, &v); err != nil {
				return nil, err
			}
			m.set(i, j, v)
		}
	}
	return m, nil
}

// RecordsMagic identifies a diverseseq pooled k-mer counts cache file: the
// on-disk form of a []*Record, so a command line run over a large FASTA
// collection can cache the (expensive) pooling pass and reuse it across
// repeat runs of nmost/max with a different --stat, --size or --group.
var RecordsMagic = [8]byte{'.', 'd', 'v', 's', 'q', 'r', 'e', 'c'}

// ErrRecordsInvalidFileFormat means the magic number did not match a
// records cache file.
var ErrRecordsInvalidFileFormat = NewValueError("invalid binary records cache file format")

// WriteRecords serializes records to w: magic, header, then for each record
// its name, sequence length and EncodeCounts-framed Kcounts in turn. Every
// record shares the same underlying *bufio.Writer, so EncodeCounts's own
// buffering (and DecodeCounts's matching *bufio.Reader reuse) never has to
// re-wrap the stream per record.
func WriteRecords(w io.Writer, records []*Record) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}

	if err := binary.Write(bw, be, RecordsMagic); err != nil {
		return err
	}
	header := Header{MainVersion: MainVersion, MinorVersion: MinorVersion, N: uint32(len(records))}
	if err := binary.Write(bw, be, header); err != nil {
		return err
	}
	for _, r := range records {
		if err := binary.Write(bw, be, uint32(len(r.Name))); err != nil {
			return err
		}
		if _, err := io.WriteString(bw, r.Name); err != nil {
			return err
		}
		if err := binary.Write(bw, be, uint64(r.Length)); err != nil {
			return err
		}
		if err := EncodeCounts(bw, r.Kcounts); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadRecords deserializes records written by WriteRecords.
func ReadRecords(r io.Reader) ([]*Record, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var magic [8]byte
	if err := binary.Read(br, be, &magic); err != nil {
		return nil, err
	}
	if magic != RecordsMagic {
		return nil, ErrRecordsInvalidFileFormat
	}

	var header Header
	if err := binary.Read(br, be, &header); err != nil {
		return nil, err
	}
	if header.MainVersion != MainVersion {
		return nil, ErrVersionMismatch
	}

	records := make([]*Record, header.N)
	for i := range records {
		var nameLen uint32
		if err := binary.Read(br, be, &nameLen); err != nil {
			return nil, err
		}
		nameBuf := make([]byte, nameLen)
		if _, err := io.ReadFull(br, nameBuf); err != nil {
			return nil, err
		}
		var length uint64
		if err := binary.Read(br, be, &length); err != nil {
			return nil, err
		}
		counts, err := DecodeCounts(br)
		if err != nil {
			return nil, err
		}
		rec, err := NewRecord(string(nameBuf), int(length), counts)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}
