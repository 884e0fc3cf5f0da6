package osr

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// zstdMagic は zstd フレームの先頭4バイト
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// zstdDecoder は DecodeAll 専用に共有するデコーダ
var zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
})

// ReadFile はリプレイファイルを読み込みます。
// zstd で圧縮されたファイル (*.osr.zst) は展開してから返します。
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	dec, err := zstdDecoder()
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	plain, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, &IOError{Path: path, Err: fmt.Errorf("zstdの展開に失敗しました: %w", err)}
	}
	log.Debug().Str("path", path).Int("compressed", len(data)).Int("size", len(plain)).Msg("osr: zstd file expanded")
	return plain, nil
}

// DecodeFile はファイルを読み込んでデコードします
func DecodeFile(path string, cfg Config) (*Replay, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	replay, err := Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return replay, nil
}
