package osr

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

// replayBuilder はテスト用のリプレイバイト列を組み立てます
type replayBuilder struct {
	buf bytes.Buffer
}

func (b *replayBuilder) u8(v uint8) *replayBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *replayBuilder) i16(v int16) *replayBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *replayBuilder) i32(v int32) *replayBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *replayBuilder) i64(v int64) *replayBuilder {
	_ = binary.Write(&b.buf, binary.LittleEndian, v)
	return b
}

func (b *replayBuilder) str(s string) *replayBuilder {
	b.buf.WriteByte(0x0b)
	b.buf.Write(binary.AppendUvarint(nil, uint64(len(s))))
	b.buf.WriteString(s)
	return b
}

func (b *replayBuilder) noStr() *replayBuilder {
	b.buf.WriteByte(0x00)
	return b
}

func (b *replayBuilder) raw(p []byte) *replayBuilder {
	b.buf.Write(p)
	return b
}

func (b *replayBuilder) bytes() []byte {
	return b.buf.Bytes()
}

// header は mode 以外を固定値にしたヘッダを書き込みます (ライフバーなし)
func (b *replayBuilder) header(mode uint8) *replayBuilder {
	b.u8(mode).
		i32(20240101).
		str("d41d8cd98f00b204e9800998ecf8427e").
		str("peppy").
		noStr()
	b.i16(300).i16(100).i16(50).i16(30).i16(10).i16(1)
	b.i32(1234567).i16(512).u8(0).i32(int32(ModHidden | ModDoubleTime))
	b.noStr()
	b.i64(637134336000000000)
	return b
}

// compressLZMA はテスト用にデータを .lzma 形式で圧縮します
func compressLZMA(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		t.Fatalf("lzma.NewWriter() error = %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("lzma Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("lzma Close() error = %v", err)
	}
	return buf.Bytes()
}

// buildReplay はアクション文字列を圧縮して完全なリプレイを組み立てます
func buildReplay(t *testing.T, mode uint8, actions string, replayID int64) []byte {
	t.Helper()
	compressed := compressLZMA(t, []byte(actions))
	b := &replayBuilder{}
	b.header(mode).i32(int32(len(compressed))).raw(compressed).i64(replayID)
	return b.bytes()
}
