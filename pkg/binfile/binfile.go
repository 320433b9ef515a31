package binfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/consensys/go-publicinputs/pkg/serialize"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"
)

// ============================================================================
// Binary File Format
// ============================================================================

// Format identifies which of the two canonical encodings a binary file holds.
type Format uint8

const (
	// BUFFER indicates the byte encoding of a record.
	BUFFER Format = 0
	// FIELDS indicates the field encoding of a record, stored as consecutive
	// 32-byte big-endian elements.
	FIELDS Format = 1
)

func (p Format) String() string {
	switch p {
	case BUFFER:
		return "buffer"
	case FIELDS:
		return "fields"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// ParseFormat parses a format name, as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "buffer":
		return BUFFER, nil
	case "fields":
		return FIELDS, nil
	default:
		return 0, fmt.Errorf("unknown format \"%s\" (expected buffer or fields)", name)
	}
}

// Compression identifies how the payload of a binary file is stored.
type Compression uint8

const (
	// NONE indicates the payload is stored as is.
	NONE Compression = 0
	// ZSTD indicates the payload is zstd compressed.
	ZSTD Compression = 1
)

// Digest is the BLAKE3 hash of an (uncompressed) payload.
type Digest [32]byte

// DigestOf computes the digest of a given payload.
func DigestOf(payload []byte) Digest {
	return Digest(blake3.Sum256(payload))
}

func (p Digest) String() string {
	return fmt.Sprintf("%x", p[:])
}

// BinaryFile is a programatic representation of an encoded record stored on
// disk.  The payload is held uncompressed.
type BinaryFile struct {
	// Header for the binary file
	Header Header
	// The encoded record itself.
	Payload []byte
}

// NewBinaryFile constructs a new binary file with the default header for the
// currently supported version.
func NewBinaryFile(format Format, compression Compression, payload []byte) *BinaryFile {
	return &BinaryFile{
		Header{PCPINPUT, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION, format, compression,
			uint32(len(payload)), DigestOf(payload)},
		payload,
	}
}

// Header provides a structured header for the binary file format.  In
// particular, it supports versioning and integrity checking of the payload.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
	Format       Format
	Compression  Compression
	// Length of the uncompressed payload
	Length uint32
	// Digest of the uncompressed payload
	Digest Digest
}

// HEADER_BYTES is the width of a marshalled header.
const HEADER_BYTES = 8 + 2 + 2 + 1 + 1 + 4 + 32

// MAX_PAYLOAD_BYTES bounds the (uncompressed) payload of a binary file, and
// hence the memory which decompression may allocate.  Encoded records are far
// smaller than this.
const MAX_PAYLOAD_BYTES = 1 << 20

// MarshalBinary converts the BinaryFile Header into a sequence of bytes.
func (p *Header) MarshalBinary() ([]byte, error) {
	var (
		buffer     bytes.Buffer
		majorBytes [2]byte
		minorBytes [2]byte
		lenBytes   [4]byte
	)
	// Marshall version numbers
	binary.BigEndian.PutUint16(majorBytes[:], p.MajorVersion)
	binary.BigEndian.PutUint16(minorBytes[:], p.MinorVersion)
	binary.BigEndian.PutUint32(lenBytes[:], p.Length)
	// Write identifier
	buffer.Write(p.Identifier[:])
	// Write major version
	buffer.Write(majorBytes[:])
	// Write minor version
	buffer.Write(minorBytes[:])
	// Write format & compression
	buffer.WriteByte(byte(p.Format))
	buffer.WriteByte(byte(p.Compression))
	// Write payload length
	buffer.Write(lenBytes[:])
	// Write digest
	buffer.Write(p.Digest[:])
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this BinaryFile Header from a given set of data
// bytes.  This should match exactly the encoding above.
func (p *Header) UnmarshalBinary(buffer *bytes.Buffer) error {
	var data [HEADER_BYTES]byte
	//
	if n, err := buffer.Read(data[:]); err != nil {
		return err
	} else if n != HEADER_BYTES {
		return errors.New("malformed binary file")
	}
	//
	copy(p.Identifier[:], data[0:8])
	p.MajorVersion = binary.BigEndian.Uint16(data[8:10])
	p.MinorVersion = binary.BigEndian.Uint16(data[10:12])
	p.Format = Format(data[12])
	p.Compression = Compression(data[13])
	p.Length = binary.BigEndian.Uint32(data[14:18])
	copy(p.Digest[:], data[18:])
	// Done
	return nil
}

// IsCompatible determines whether a given binary file is compatible with this
// version of the tool.
func (p *Header) IsCompatible() bool {
	return p.Identifier == PCPINPUT &&
		p.MajorVersion == BINFILE_MAJOR_VERSION &&
		p.MinorVersion <= BINFILE_MINOR_VERSION
}

// BINFILE_MAJOR_VERSION gives the major version of the binary file format.
const BINFILE_MAJOR_VERSION uint16 = 1

// BINFILE_MINOR_VERSION gives the minor version of the binary file format.  The
// expected interpretation is that older versions are compatible with newer
// ones, but not vice-versa.
const BINFILE_MINOR_VERSION uint16 = 0

// PCPINPUT is used as the file identifier for binary file types.  This just
// helps us distinguish binary files from raw encodings.
var PCPINPUT [8]byte = [8]byte{'p', 'c', 'p', 'i', 'n', 'p', 'u', 't'}

// IsBinaryFile checks whether the given data file begins with the expected
// identifier.
func IsBinaryFile(data []byte) bool {
	return len(data) >= len(PCPINPUT) && bytes.Equal(data[:len(PCPINPUT)], PCPINPUT[:])
}

// MarshalBinary converts the BinaryFile into a sequence of bytes.
func (p *BinaryFile) MarshalBinary() ([]byte, error) {
	var (
		buffer  bytes.Buffer
		payload = p.Payload
	)
	// Marshal header
	headerBytes, err := p.Header.MarshalBinary()
	//
	if err != nil {
		return nil, err
	}
	// Compress payload (if applicable)
	switch p.Header.Compression {
	case NONE:
	case ZSTD:
		payload = zstdEncoder.EncodeAll(payload, nil)
	default:
		return nil, fmt.Errorf("unsupported compression %d", p.Header.Compression)
	}
	// Encode header
	buffer.Write(headerBytes)
	// Encode payload
	buffer.Write(payload)
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this BinaryFile from a given set of data bytes.
// This should match exactly the encoding above.  The payload is checked
// against the length and digest recorded in the header.
func (p *BinaryFile) UnmarshalBinary(data []byte) error {
	var err error
	//
	buffer := bytes.NewBuffer(data)
	// Read header
	if err = p.Header.UnmarshalBinary(buffer); err != nil {
		return err
	} else if !p.Header.IsCompatible() {
		return fmt.Errorf("incompatible binary file was v%d.%d, but expected v%d.%d",
			p.Header.MajorVersion, p.Header.MinorVersion, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION)
	} else if p.Header.Length > MAX_PAYLOAD_BYTES {
		return fmt.Errorf("payload of %d bytes exceeds maximum of %d", p.Header.Length, MAX_PAYLOAD_BYTES)
	}
	// Decompress payload (if applicable)
	switch p.Header.Compression {
	case NONE:
		p.Payload = buffer.Bytes()
	case ZSTD:
		// Decoder memory is bounded by MAX_PAYLOAD_BYTES, whatever the header says
		destination := make([]byte, 0, p.Header.Length)
		//
		if p.Payload, err = zstdDecoder.DecodeAll(buffer.Bytes(), destination); err != nil {
			return fmt.Errorf("zstd decompress: %w", err)
		}
	default:
		return fmt.Errorf("unsupported compression %d", p.Header.Compression)
	}
	// Check integrity
	if uint32(len(p.Payload)) != p.Header.Length {
		return fmt.Errorf("payload has %d bytes, but expected %d", len(p.Payload), p.Header.Length)
	} else if digest := DigestOf(p.Payload); digest != p.Header.Digest {
		return fmt.Errorf("payload digest %s does not match %s", digest, p.Header.Digest)
	}
	//
	return nil
}

// ============================================================================
// Field vectors
// ============================================================================

// FieldsToBytes flattens a field vector into consecutive 32-byte elements.
func FieldsToBytes(fields []field.Element) []byte {
	return serialize.FieldsOf(fields).ToBuffer()
}

// BytesToFields splits a byte sequence into consecutive 32-byte elements,
// rejecting any element which is not a canonical field element.
func BytesToFields(data []byte) ([]field.Element, error) {
	if len(data)%field.BYTES != 0 {
		return nil, fmt.Errorf("field vector has %d bytes (not a multiple of %d)", len(data), field.BYTES)
	}
	//
	fields := make([]field.Element, len(data)/field.BYTES)
	//
	if err := serialize.FieldsOf(fields).FromBuffer(serialize.NewBufferReader(data)); err != nil {
		return nil, err
	}
	//
	return fields, nil
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	//
	if zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault)); err != nil {
		panic("binfile: zstd encoder initialization failed: " + err.Error())
	}
	//
	if zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MAX_PAYLOAD_BYTES)); err != nil {
		panic("binfile: zstd decoder initialization failed: " + err.Error())
	}
}
