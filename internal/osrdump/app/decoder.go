package app

import (
	"context"

	"github.com/shiroemons/go-osr/pkg/osr"
)

// replayDecoder は osr.DecodeFiles を設定付きで呼び出します
type replayDecoder struct {
	cfg     osr.Config
	workers int
}

// DecodeFiles は paths を並列にデコードします
func (d *replayDecoder) DecodeFiles(ctx context.Context, paths []string) []osr.FileResult {
	return osr.DecodeFiles(ctx, paths, d.cfg, d.workers)
}
