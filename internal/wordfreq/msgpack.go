package wordfreq

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// msgpackReader decodes the subset of MessagePack used by wordfreq data files:
// arrays of strings preceded by a small header map.
type msgpackReader struct {
	r *bufio.Reader
}

func newMsgpackReader(r io.Reader) *msgpackReader {
	return &msgpackReader{r: bufio.NewReader(r)}
}

func (m *msgpackReader) value() (any, error) {
	b, err := m.r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b <= 0x7f:
		return int64(b), nil
	case b >= 0xe0:
		return int64(int8(b)), nil
	case b&0xe0 == 0xa0:
		return m.str(int(b & 0x1f))
	case b&0xf0 == 0x90:
		return m.array(int(b & 0x0f))
	case b&0xf0 == 0x80:
		return m.mapping(int(b & 0x0f))
	}

	switch b {
	case 0xc0:
		return nil, nil
	case 0xc2, 0xc3:
		return b == 0xc3, nil
	case 0xc4, 0xc5, 0xc6:
		n, err := m.readUint(1 << (b - 0xc4))
		if err != nil {
			return nil, err
		}
		return m.raw(int(n))
	case 0xca:
		bits, err := m.readUint(4)
		return float64(math.Float32frombits(uint32(bits))), err
	case 0xcb:
		bits, err := m.readUint(8)
		return math.Float64frombits(bits), err
	case 0xcc, 0xcd, 0xce, 0xcf:
		n, err := m.readUint(1 << (b - 0xcc))
		return int64(n), err
	case 0xd0, 0xd1, 0xd2, 0xd3:
		size := 1 << (b - 0xd0)
		n, err := m.readUint(size)
		shift := 64 - 8*size
		return int64(n<<shift) >> shift, err
	case 0xd9, 0xda, 0xdb:
		n, err := m.readUint(1 << (b - 0xd9))
		if err != nil {
			return nil, err
		}
		return m.str(int(n))
	case 0xdc, 0xdd:
		n, err := m.readUint(2 << (b - 0xdc))
		if err != nil {
			return nil, err
		}
		return m.array(int(n))
	case 0xde, 0xdf:
		n, err := m.readUint(2 << (b - 0xde))
		if err != nil {
			return nil, err
		}
		return m.mapping(int(n))
	}
	return nil, fmt.Errorf("unsupported msgpack prefix 0x%x", b)
}

func (m *msgpackReader) readUint(size int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(m.r, buf[8-size:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (m *msgpackReader) raw(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(m.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (m *msgpackReader) str(n int) (string, error) {
	buf, err := m.raw(n)
	return string(buf), err
}

func (m *msgpackReader) array(n int) ([]any, error) {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := m.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *msgpackReader) mapping(n int) (map[any]any, error) {
	out := make(map[any]any, n)
	for i := 0; i < n; i++ {
		k, err := m.value()
		if err != nil {
			return nil, err
		}
		v, err := m.value()
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
