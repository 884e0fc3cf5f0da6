// Package interfaces はosrdumpコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"

	"github.com/shiroemons/go-osr/pkg/osr"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	Stat(name string) (FileInfo, error)
	ReadDir(dirname string) ([]DirEntry, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
}

// DirEntry はディレクトリエントリのインターフェース
type DirEntry interface {
	Name() string
	IsDir() bool
}

// ReplayDecoder は複数のリプレイファイルをデコードするインターフェース
type ReplayDecoder interface {
	DecodeFiles(ctx context.Context, paths []string) []osr.FileResult
}

// ReplayFinder はディレクトリからリプレイファイルを検索するインターフェース
type ReplayFinder interface {
	Find(dir string) ([]string, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
