package osr

import (
	"fmt"
	"math"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	stringAbsent  = 0x00
	stringPresent = 0x0b
)

// readString は「存在バイト + LEB128長 + UTF-8本体」の文字列フィールドを読み込みます。
// 存在バイトが 0x00 の場合は nil を返します。
func (r *reader) readString(field string) (*string, error) {
	start := r.pos
	presence, err := r.uint8(field)
	if err != nil {
		return nil, err
	}

	switch presence {
	case stringAbsent:
		return nil, nil
	case stringPresent:
	default:
		return nil, newFormatError(field, start, fmt.Errorf("%w: 0x%02x", ErrInvalidPresenceByte, presence))
	}

	length, err := r.uleb128(field)
	if err != nil {
		return nil, err
	}
	if length > math.MaxInt32 {
		return nil, newFormatError(field, r.pos, fmt.Errorf("%w: 文字列長 %d", ErrTruncated, length))
	}
	raw, err := r.take(field, int(length))
	if err != nil {
		return nil, err
	}

	text, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return nil, newFormatError(field, start, fmt.Errorf("%w: %w", ErrInvalidUTF8, err))
	}
	s := string(text)
	return &s, nil
}
