package osr

import (
	"encoding/binary"
	"fmt"
)

// reader はリプレイのバイト列を先頭から順に読み進めるカーソル
type reader struct {
	buf   []byte
	pos   int
	order binary.ByteOrder
}

func newReader(buf []byte, order binary.ByteOrder) *reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &reader{buf: buf, order: order}
}

// remaining は未読のバイト数を返します
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// take は n バイトを切り出して位置を進めます
func (r *reader) take(field string, n int) ([]byte, error) {
	if n < 0 {
		return nil, newFormatError(field, r.pos, ErrNegativeLength)
	}
	if r.remaining() < n {
		return nil, newFormatError(field, r.pos,
			fmt.Errorf("%w: %d バイト必要ですが残り %d バイトです", ErrTruncated, n, r.remaining()))
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) uint8(field string) (uint8, error) {
	b, err := r.take(field, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) int16(field string) (int16, error) {
	b, err := r.take(field, 2)
	if err != nil {
		return 0, err
	}
	return int16(r.order.Uint16(b)), nil
}

func (r *reader) int32(field string) (int32, error) {
	b, err := r.take(field, 4)
	if err != nil {
		return 0, err
	}
	return int32(r.order.Uint32(b)), nil
}

func (r *reader) int64(field string) (int64, error) {
	b, err := r.take(field, 8)
	if err != nil {
		return 0, err
	}
	return int64(r.order.Uint64(b)), nil
}

// uleb128 は符号なしLEB128の長さを読み込みます
func (r *reader) uleb128(field string) (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	switch {
	case n == 0:
		return 0, newFormatError(field, r.pos, ErrTruncated)
	case n < 0:
		return 0, newFormatError(field, r.pos, fmt.Errorf("%w: LEB128が64ビットを超えています", ErrInvalidNumber))
	}
	r.pos += n
	return v, nil
}
