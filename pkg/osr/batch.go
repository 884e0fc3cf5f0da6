package osr

import (
	"context"
	"runtime"
	"sync"
)

// FileResult は1ファイル分のデコード結果
type FileResult struct {
	Path   string
	Replay *Replay
	Err    error
}

// デコードジョブ
type decodeJob struct {
	index int
	path  string
}

// DecodeFiles は複数のファイルを並列にデコードします。
// 結果は paths と同じ順に並び、1ファイルの失敗は他のファイルに影響しません。
// workers が0以下の場合はCPU数のワーカーを使います。
func DecodeFiles(ctx context.Context, paths []string, cfg Config, workers int) []FileResult {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan decodeJob, workers*2)
	var wg sync.WaitGroup

	// ワーカーを起動
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				// 各ワーカーは自分の添字にだけ書き込む
				results[job.index] = decodeOne(ctx, job.path, cfg)
			}
		}()
	}

	for i, path := range paths {
		jobs <- decodeJob{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return results
}

func decodeOne(ctx context.Context, path string, cfg Config) FileResult {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return FileResult{Path: path, Err: ctx.Err()}
	default:
	}
	replay, err := DecodeFile(path, cfg)
	return FileResult{Path: path, Replay: replay, Err: err}
}
