package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shiroemons/go-osr/internal/osrdump/mocks"
)

func TestReplayFinder_Find(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Dirs["/replays"] = true
	fs.Dirs["/replays/old"] = true
	fs.Files["/replays/b.osr"] = nil
	fs.Files["/replays/a.osr.zst"] = nil
	fs.Files["/replays/notes.txt"] = nil
	fs.Files["/replays/old/c.OSR"] = nil

	got, err := NewReplayFinder(fs).Find("/replays")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{"/replays/a.osr.zst", "/replays/b.osr", "/replays/old/c.OSR"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestReplayFinder_Find_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fs *mocks.MockFileSystem)
		dir     string
		wantErr error
	}{
		{
			name:    "存在しないディレクトリ",
			setup:   func(fs *mocks.MockFileSystem) {},
			dir:     "/missing",
			wantErr: ErrReadDirectory,
		},
		{
			name:    "ファイルを指定",
			setup:   func(fs *mocks.MockFileSystem) { fs.Files["/a.osr"] = nil },
			dir:     "/a.osr",
			wantErr: ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystem()
			tt.setup(fs)

			_, err := NewReplayFinder(fs).Find(tt.dir)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Find() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReplayFinder_Find_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"x.osr", "nested/y.osr.zst", "z.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := NewReplayFinder(NewOSFileSystem()).Find(dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	want := []string{filepath.Join(dir, "nested", "y.osr.zst"), filepath.Join(dir, "x.osr")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
}

func TestOSFileSystem(t *testing.T) {
	fs := NewOSFileSystem()
	path := filepath.Join(t.TempDir(), "a.osr")

	if fs.FileExists(path) {
		t.Error("FileExists() = true before write")
	}
	if err := fs.WriteFile(path, []byte("osr"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !fs.FileExists(path) {
		t.Error("FileExists() = false after write")
	}

	data, err := fs.ReadFile(path)
	if err != nil || string(data) != "osr" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Name() != "a.osr" || info.IsDir() {
		t.Errorf("Stat() = %s, dir=%v", info.Name(), info.IsDir())
	}
}
