// Package ss58 implements the SS58 address format used by Substrate based chains.
package ss58

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// MaxPrefix is the highest network prefix that can be encoded (14 bits).
const MaxPrefix = 16383

var checksumPreimage = []byte("SS58PRE")

var (
	ErrInvalidEncoding = errors.New("invalid base58 encoding")
	ErrInvalidLength   = errors.New("invalid address length")
	ErrInvalidChecksum = errors.New("invalid address checksum")
	ErrInvalidPrefix   = errors.New("invalid network prefix")
	ErrPrefixMismatch  = errors.New("address is not encoded with the expected network prefix")
)

// Decode decodes an SS58 address into its network prefix and public key (or account id).
func Decode(address string) (prefix uint16, payload []byte, err error) {
	data := base58.Decode(address)
	if len(data) == 0 {
		return 0, nil, errors.WithStack(ErrInvalidEncoding)
	}

	prefixLen := 1
	switch {
	case data[0] < 64:
		prefix = uint16(data[0])
	case data[0] < 128:
		if len(data) < 2 {
			return 0, nil, errors.WithStack(ErrInvalidLength)
		}
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLen = 2
	default:
		return 0, nil, errors.WithStack(ErrInvalidPrefix)
	}

	payloadLen, checksumLen, ok := splitBody(len(data) - prefixLen)
	if !ok {
		return 0, nil, errors.Wrapf(ErrInvalidLength, "length: %d", len(data))
	}

	body := data[:prefixLen+payloadLen]
	sum := checksum(body)
	if !bytes.Equal(sum[:checksumLen], data[prefixLen+payloadLen:]) {
		return 0, nil, errors.WithStack(ErrInvalidChecksum)
	}

	payload = make([]byte, payloadLen)
	copy(payload, data[prefixLen:prefixLen+payloadLen])
	return prefix, payload, nil
}

// Encode encodes a public key (or account id) as an SS58 address for the given network prefix.
func Encode(payload []byte, prefix uint16) (string, error) {
	checksumLen, ok := checksumLength(len(payload))
	if !ok {
		return "", errors.Wrapf(ErrInvalidLength, "payload length: %d", len(payload))
	}

	var buf []byte
	switch {
	case prefix < 64:
		buf = make([]byte, 0, 1+len(payload)+checksumLen)
		buf = append(buf, byte(prefix))
	case prefix <= MaxPrefix:
		buf = make([]byte, 0, 2+len(payload)+checksumLen)
		buf = append(buf,
			byte((prefix&0b0000_0000_1111_1100)>>2)|0b0100_0000,
			byte(prefix>>8)|byte((prefix&0b0000_0000_0000_0011)<<6),
		)
	default:
		return "", errors.Wrapf(ErrInvalidPrefix, "prefix: %d", prefix)
	}

	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:checksumLen]...)
	return base58.Encode(buf), nil
}

// Validate returns nil if the address decodes with a valid checksum and
// re-encodes to the exact same string under the given network prefix.
func Validate(address string, prefix uint16) error {
	_, payload, err := Decode(address)
	if err != nil {
		return errors.WithStack(err)
	}
	encoded, err := Encode(payload, prefix)
	if err != nil {
		return errors.WithStack(err)
	}
	if encoded != address {
		return errors.Wrapf(ErrPrefixMismatch, "expected prefix: %d", prefix)
	}
	return nil
}

// IsValid reports whether the address is valid for the given network prefix.
func IsValid(address string, prefix uint16) bool {
	return Validate(address, prefix) == nil
}

func checksum(data []byte) [blake2b.Size]byte {
	preimage := make([]byte, 0, len(checksumPreimage)+len(data))
	preimage = append(preimage, checksumPreimage...)
	preimage = append(preimage, data...)
	return blake2b.Sum512(preimage)
}

func checksumLength(payloadLen int) (int, bool) {
	switch payloadLen {
	case 1, 2, 4, 8:
		return 1, true
	case 32, 33:
		return 2, true
	default:
		return 0, false
	}
}

// splitBody returns the payload and checksum lengths for the bytes following the prefix.
func splitBody(n int) (payloadLen, checksumLen int, ok bool) {
	switch n {
	case 2, 3, 5, 9:
		return n - 1, 1, true
	case 34, 35:
		return n - 2, 2, true
	default:
		return 0, 0, false
	}
}
