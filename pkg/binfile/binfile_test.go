package binfile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/consensys/go-publicinputs/pkg/field"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BinFile_01(t *testing.T) {
	checkBinFile(t, BUFFER, NONE, []byte{})
}

func Test_BinFile_02(t *testing.T) {
	checkBinFile(t, BUFFER, NONE, []byte{1, 2, 3, 4, 5})
}

func Test_BinFile_03(t *testing.T) {
	checkBinFile(t, FIELDS, ZSTD, make([]byte, 799*field.BYTES))
}

func Test_BinFile_04(t *testing.T) {
	checkBinFile(t, BUFFER, ZSTD, bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 100))
}

func Test_BinFile_05(t *testing.T) {
	var (
		binf  = NewBinaryFile(BUFFER, NONE, []byte{1, 2, 3})
		other BinaryFile
	)
	//
	data, err := binf.MarshalBinary()
	require.NoError(t, err)
	// Corrupt payload
	data[len(data)-1] ^= 0xff
	//
	assert.ErrorContains(t, other.UnmarshalBinary(data), "digest")
	// Truncated payload
	assert.ErrorContains(t, other.UnmarshalBinary(data[:len(data)-1]), "expected 3")
	// Truncated header
	assert.Error(t, other.UnmarshalBinary(data[:HEADER_BYTES-1]))
}

func Test_BinFile_06(t *testing.T) {
	var (
		binf  = NewBinaryFile(BUFFER, NONE, []byte{1})
		other BinaryFile
	)
	//
	binf.Header.MajorVersion++
	data, err := binf.MarshalBinary()
	require.NoError(t, err)
	//
	assert.ErrorContains(t, other.UnmarshalBinary(data), "incompatible")
	assert.True(t, IsBinaryFile(data))
	assert.False(t, IsBinaryFile([]byte("pcpi")))
}

func Test_BinFile_07(t *testing.T) {
	var (
		binf  = NewBinaryFile(FIELDS, ZSTD, make([]byte, 4*MAX_PAYLOAD_BYTES))
		other BinaryFile
	)
	// Declared length understates a highly compressible payload
	binf.Header.Length = 10
	data, err := binf.MarshalBinary()
	require.NoError(t, err)
	require.Less(t, len(data), MAX_PAYLOAD_BYTES)
	//
	assert.ErrorIs(t, other.UnmarshalBinary(data), zstd.ErrDecoderSizeExceeded)
}

func Test_BinFile_08(t *testing.T) {
	var (
		binf  = NewBinaryFile(BUFFER, ZSTD, bytes.Repeat([]byte{7}, 64))
		other BinaryFile
	)
	// Declared length exceeds the maximum
	binf.Header.Length = MAX_PAYLOAD_BYTES + 1
	data, err := binf.MarshalBinary()
	require.NoError(t, err)
	assert.ErrorContains(t, other.UnmarshalBinary(data), "exceeds maximum")
	// Declared length mismatches the payload
	binf.Header.Length = 10
	data, err = binf.MarshalBinary()
	require.NoError(t, err)
	assert.ErrorContains(t, other.UnmarshalBinary(data), "expected 10")
}

func Test_Format_01(t *testing.T) {
	for _, format := range []Format{BUFFER, FIELDS} {
		parsed, err := ParseFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}
	//
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func Test_Fields_01(t *testing.T) {
	var fields = []field.Element{field.Uint64(1), field.Zero(), field.Uint64(0xffffffff)}
	//
	data := FieldsToBytes(fields)
	require.Len(t, data, 3*field.BYTES)
	//
	actual, err := BytesToFields(data)
	require.NoError(t, err)
	assert.Equal(t, fields, actual)
}

func Test_Fields_02(t *testing.T) {
	_, err := BytesToFields(make([]byte, field.BYTES+1))
	assert.Error(t, err)
	// Modulus exceeded
	_, err = BytesToFields(bytes.Repeat([]byte{0xff}, field.BYTES))
	assert.True(t, errors.Is(err, field.ErrNonCanonical))
}

func checkBinFile(t *testing.T, format Format, compression Compression, payload []byte) {
	var (
		binf  = NewBinaryFile(format, compression, payload)
		other BinaryFile
	)
	//
	data, err := binf.MarshalBinary()
	require.NoError(t, err)
	require.True(t, IsBinaryFile(data))
	//
	require.NoError(t, other.UnmarshalBinary(data))
	assert.Equal(t, binf.Header, other.Header)
	assert.Equal(t, len(payload), len(other.Payload))
	assert.True(t, bytes.Equal(payload, other.Payload))
	assert.Equal(t, DigestOf(payload), other.Header.Digest)
}
