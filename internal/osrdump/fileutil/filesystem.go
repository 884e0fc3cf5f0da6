package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shiroemons/go-osr/internal/osrdump/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ReadDir はディレクトリを読み込みます
func (fs *OSFileSystem) ReadDir(dirname string) ([]interfaces.DirEntry, error) {
	entries, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}

	result := make([]interfaces.DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = entry
	}
	return result, nil
}

// ReplayFinder はディレクトリ以下のリプレイファイルを検索します（FileSystemを使用）
type ReplayFinder struct {
	fs interfaces.FileSystem
}

// NewReplayFinder は新しいReplayFinderを作成します
func NewReplayFinder(fs interfaces.FileSystem) *ReplayFinder {
	return &ReplayFinder{fs: fs}
}

// Find は dir 以下を再帰的に検索し、見つかったリプレイファイルをパス順に返します
func (f *ReplayFinder) Find(dir string) ([]string, error) {
	info, err := f.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	var replays []string
	if err := f.walk(dir, &replays); err != nil {
		return nil, err
	}
	sort.Strings(replays)
	return replays, nil
}

// walk はサブディレクトリを含めてリプレイファイルを集めます
func (f *ReplayFinder) walk(dir string, replays *[]string) error {
	entries, err := f.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadDirectory, dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := f.walk(path, replays); err != nil {
				return err
			}
			continue
		}
		if IsReplayFile(entry.Name()) {
			*replays = append(*replays, path)
		}
	}
	return nil
}
