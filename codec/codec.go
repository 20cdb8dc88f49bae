// Package codec implements a self-describing binary encoding for vectors.
//
// The frame is little-endian throughout:
//
//	magic   [4]byte  "FXV1"
//	kind    uint8    element kind
//	comp    uint8    compression algorithm of the payload
//	dim     uint32   vector dimension
//	plen    uint32   payload byte length (after compression)
//	payload []byte   elements, little-endian
//	crc     uint32   CRC32-Castagnoli over everything before it
//
// The element kind is stored in the frame, so decoding with the wrong type
// parameter fails with *ErrKindMismatch instead of misinterpreting bytes.
// Frames created by older codec versions with a different layout do not
// decode; the magic carries the format version.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/fixvec"
)

var magic = [4]byte{'F', 'X', 'V', '1'}

const (
	headerSize  = 14
	trailerSize = 4
)

var (
	// ErrShortFrame is returned when the frame is truncated or its length
	// does not match the declared payload length.
	ErrShortFrame = errors.New("short frame")
	// ErrInvalidMagic is returned when the frame does not start with the
	// fixvec magic.
	ErrInvalidMagic = errors.New("invalid frame magic")
	// ErrChecksum is returned when the frame checksum does not match.
	ErrChecksum = errors.New("invalid frame checksum")
)

// crcTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crcTable = crc32.MakeTable(crc32.Castagnoli)

// ErrKindMismatch indicates a frame whose element kind differs from the
// requested decode type.
type ErrKindMismatch struct {
	Expected Kind
	Actual   Kind
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// ErrUnsupportedKind indicates an element type without a stable wire
// representation, e.g. the platform-sized int and uint.
type ErrUnsupportedKind struct {
	Type string
}

func (e *ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("unsupported element kind: %s", e.Type)
}

type options struct {
	compression Compression
}

// Option configures encoding behavior.
type Option func(*options)

// WithCompression selects the payload compression algorithm.
// The default is CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Encode serializes v into a checksummed frame.
func Encode[T fixvec.Number](v *fixvec.Vector[T], optFns ...Option) ([]byte, error) {
	opts := options{
		compression: CompressionNone,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	kind := kindOf[T]()
	if kind == KindInvalid {
		var zero T
		return nil, &ErrUnsupportedKind{Type: fmt.Sprintf("%T", zero)}
	}

	var payload bytes.Buffer
	if err := binary.Write(&payload, binary.LittleEndian, v.Values()); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	comp := opts.compression
	body, err := compress(payload.Bytes(), comp)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if body == nil {
		// Incompressible or compression did not help; store raw.
		comp = CompressionNone
		body = payload.Bytes()
	}

	frame := make([]byte, headerSize+len(body)+trailerSize)
	copy(frame[0:4], magic[:])
	frame[4] = byte(kind)
	frame[5] = byte(comp)
	binary.LittleEndian.PutUint32(frame[6:], uint32(v.Dim()))
	binary.LittleEndian.PutUint32(frame[10:], uint32(len(body)))
	copy(frame[headerSize:], body)

	crc := crc32.Checksum(frame[:headerSize+len(body)], crcTable)
	binary.LittleEndian.PutUint32(frame[headerSize+len(body):], crc)

	return frame, nil
}

// Decode deserializes a frame produced by Encode.
//
// The type parameter must match the encoded element kind exactly;
// no implicit numeric conversion is performed.
func Decode[T fixvec.Number](data []byte) (*fixvec.Vector[T], error) {
	want := kindOf[T]()
	if want == KindInvalid {
		var zero T
		return nil, &ErrUnsupportedKind{Type: fmt.Sprintf("%T", zero)}
	}

	if len(data) < headerSize+trailerSize {
		return nil, ErrShortFrame
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, ErrInvalidMagic
	}

	plen := binary.LittleEndian.Uint32(data[10:])
	if len(data) != headerSize+int(plen)+trailerSize {
		return nil, ErrShortFrame
	}

	crc := crc32.Checksum(data[:headerSize+int(plen)], crcTable)
	if crc != binary.LittleEndian.Uint32(data[headerSize+int(plen):]) {
		return nil, ErrChecksum
	}

	got := Kind(data[4])
	if got != want {
		return nil, &ErrKindMismatch{Expected: want, Actual: got}
	}

	dim := int(binary.LittleEndian.Uint32(data[6:]))
	raw, err := decompress(data[headerSize:headerSize+int(plen)], Compression(data[5]), dim*want.size())
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if len(raw) != dim*want.size() {
		return nil, ErrShortFrame
	}

	elems := make([]T, dim)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, elems); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	return fixvec.New(dim, elems)
}
