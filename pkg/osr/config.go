package osr

import "encoding/binary"

// DefaultDictCap はLZMA展開時の辞書容量の既定値 (5 MiB)
const DefaultDictCap = 5 * 1024 * 1024

// Config はデコードの設定です。ゼロ値のフィールドは既定値になります。
type Config struct {
	// ByteOrder は数値フィールドのバイトオーダー (既定はリトルエンディアン)
	ByteOrder binary.ByteOrder
	// HeaderOnly が true の場合、アクションデータを展開・解析しません
	HeaderOnly bool
	// DictCap はLZMA展開時の辞書容量
	DictCap int
}

// DefaultConfig は既定の設定を返します
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.LittleEndian,
		DictCap:   DefaultDictCap,
	}
}

func (c Config) withDefaults() Config {
	if c.ByteOrder == nil {
		c.ByteOrder = binary.LittleEndian
	}
	if c.DictCap <= 0 {
		c.DictCap = DefaultDictCap
	}
	return c
}
