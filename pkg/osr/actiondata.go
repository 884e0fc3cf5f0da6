package osr

import (
	"encoding/base64"
	"fmt"
)

// ActionDataOptions は DecodeActionData に渡すデータの状態を表します
type ActionDataOptions struct {
	// Base64 はデータが base64 文字列 (osu! API v1 の /get_replay など) かどうか
	Base64 bool
	// Decompressed はデータが既にLZMA展開済みかどうか。true の場合 Base64 は無視します
	Decompressed bool
	// DictCap はLZMA展開時の辞書容量 (0 なら既定値)
	DictCap int
}

// DecodeActionData はリプレイファイルのアクションデータ部分だけをデコードします
func DecodeActionData(data []byte, mode GameMode, opts ActionDataOptions) (Actions, *int32, error) {
	if mode == ModeUnknown {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	if !opts.Decompressed {
		if opts.Base64 {
			decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
			n, err := base64.StdEncoding.Decode(decoded, data)
			if err != nil {
				return nil, nil, newFormatError("action_data", 0, fmt.Errorf("base64: %w", err))
			}
			data = decoded[:n]
		}
		dictCap := opts.DictCap
		if dictCap <= 0 {
			dictCap = DefaultDictCap
		}
		raw, err := inflate(data, dictCap)
		if err != nil {
			return nil, nil, newFormatError("action_data", 0, err)
		}
		data = raw
	}

	return decodeActions(mode, data)
}
