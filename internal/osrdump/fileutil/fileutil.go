// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/shiroemons/go-osr/internal/osrdump/interfaces"
)

var (
	// ReplayFilePattern は xxx.osr や zstd 圧縮された xxx.osr.zst ファイルのパターン
	ReplayFilePattern = regexp.MustCompile(`(?i)\.osr(?:\.zst)?$`)
)

// utf8bom はUTF-8のBOM
var utf8bom = []byte{0xEF, 0xBB, 0xBF}

// IsReplayFile はファイル名がリプレイファイルかどうかを判定します
func IsReplayFile(filename string) bool {
	return ReplayFilePattern.MatchString(filepath.Base(filename))
}

// SaveToFileWithBOM はUTF-8 BOMありでファイルに保存します
func SaveToFileWithBOM(fs interfaces.FileSystem, outputPath string, content string) error {
	data := make([]byte, 0, len(utf8bom)+len(content))
	data = append(data, utf8bom...)
	data = append(data, content...)
	return save(fs, outputPath, data)
}

// SaveToFile はBOMなしでファイルに保存します
func SaveToFile(fs interfaces.FileSystem, outputPath string, content string) error {
	return save(fs, outputPath, []byte(content))
}

func save(fs interfaces.FileSystem, outputPath string, data []byte) error {
	// 出力先ディレクトリを作成（存在しない場合）
	dir := filepath.Dir(outputPath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}

	return nil
}
