package mocks

import (
	"context"

	"github.com/shiroemons/go-osr/pkg/osr"
)

// MockReplayDecoder はテスト用のReplayDecoderモック
type MockReplayDecoder struct {
	Replays map[string]*osr.Replay
	Errors  map[string]error
	// Calls は DecodeFiles に渡されたパス
	Calls [][]string
}

// NewMockReplayDecoder は新しいMockReplayDecoderを作成します
func NewMockReplayDecoder() *MockReplayDecoder {
	return &MockReplayDecoder{
		Replays: make(map[string]*osr.Replay),
		Errors:  make(map[string]error),
	}
}

// DecodeFiles は登録されたリプレイまたはエラーを入力順に返します
func (m *MockReplayDecoder) DecodeFiles(ctx context.Context, paths []string) []osr.FileResult {
	m.Calls = append(m.Calls, paths)
	results := make([]osr.FileResult, len(paths))
	for i, path := range paths {
		results[i] = osr.FileResult{Path: path, Replay: m.Replays[path], Err: m.Errors[path]}
	}
	return results
}
