package osr

import (
	"bytes"
	"fmt"

	"github.com/ulikunitz/xz/lzma"
)

// inflateBufferSize は展開先バッファの初期容量
const inflateBufferSize = 1024 * 1024

// readCompressedBlock は符号付き32ビット長とLZMA圧縮されたアクションデータを読み込みます
func (r *reader) readCompressedBlock() ([]byte, error) {
	start := r.pos
	length, err := r.int32("action_data_length")
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, newFormatError("action_data_length", start, fmt.Errorf("%w: %d", ErrNegativeLength, length))
	}
	return r.take("action_data", int(length))
}

// inflate はLZMA (.lzma 形式) のデータをすべて展開します
func inflate(data []byte, dictCap int) ([]byte, error) {
	cfg := lzma.ReaderConfig{DictCap: dictCap}
	lr, err := cfg.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	var buf bytes.Buffer
	buf.Grow(inflateBufferSize)
	if _, err := buf.ReadFrom(lr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	return buf.Bytes(), nil
}
