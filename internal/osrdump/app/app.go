// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"

	"github.com/shiroemons/go-osr/internal/osrdump/config"
	"github.com/shiroemons/go-osr/internal/osrdump/fileutil"
	"github.com/shiroemons/go-osr/internal/osrdump/interfaces"
	"github.com/shiroemons/go-osr/internal/osrdump/models"
	"github.com/shiroemons/go-osr/internal/osrdump/report"
	"github.com/shiroemons/go-osr/pkg/osr"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  interfaces.Logger
	decoder interfaces.ReplayDecoder
	finder  interfaces.ReplayFinder
	fs      interfaces.FileSystem
	stdout  io.Writer
	stderr  io.Writer
	lang    language.Tag
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Decoder    interfaces.ReplayDecoder
	Finder     interfaces.ReplayFinder
	Logger     interfaces.Logger
	Stdout     io.Writer
	Stderr     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var logger interfaces.Logger = config.NewDebugLogger(cfg.DebugMode)
	if opts.Logger != nil {
		logger = opts.Logger
	}

	// デフォルトのデコーダを設定
	var decoder interfaces.ReplayDecoder
	if opts.Decoder != nil {
		decoder = opts.Decoder
	} else {
		decodeCfg := osr.DefaultConfig()
		decodeCfg.HeaderOnly = cfg.HeaderOnly
		decoder = &replayDecoder{cfg: decodeCfg, workers: cfg.Workers}
	}

	var finder interfaces.ReplayFinder
	if opts.Finder != nil {
		finder = opts.Finder
	} else {
		finder = fileutil.NewReplayFinder(fs)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		config:  cfg,
		logger:  logger,
		decoder: decoder,
		finder:  finder,
		fs:      fs,
		stdout:  stdout,
		stderr:  stderr,
		lang:    language.Japanese,
	}
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	paths, err := a.collectPaths()
	if err != nil {
		return err
	}
	a.logger.Printf("%d 件のリプレイをデコードします\n", len(paths))

	results := a.decoder.DecodeFiles(ctx, paths)
	if err := ctx.Err(); err != nil {
		return err
	}

	rep := report.Build(results)
	output, err := a.render(rep)
	if err != nil {
		return err
	}

	fmt.Fprint(a.stdout, output)

	// 失敗したファイルは標準エラー出力に一覧表示
	if len(rep.Failures) > 0 {
		fmt.Fprintf(a.stderr, "警告: %d 件のリプレイのデコードに失敗しました\n", len(rep.Failures))
		fmt.Fprint(a.stderr, report.Failures(rep))
	}

	if a.config.OutputPath != "" {
		if err := a.save(output); err != nil {
			return err
		}
		a.logger.Printf("レポートを %s に保存しました\n", a.config.OutputPath)
	}

	if len(rep.Replays) == 0 {
		return fmt.Errorf("%w: %d 件", ErrAllFailed, len(rep.Failures))
	}
	return nil
}

// collectPaths は引数のファイルと --dir 以下のリプレイを重複なく集めます
func (a *App) collectPaths() ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, path := range a.config.Paths {
		add(path)
	}

	if a.config.Dir != "" {
		found, err := a.finder.Find(a.config.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFindReplays, err)
		}
		a.logger.Printf("%s から %d 件のリプレイが見つかりました\n", a.config.Dir, len(found))
		for _, path := range found {
			add(path)
		}
	}

	if len(paths) == 0 {
		return nil, ErrNoReplays
	}
	return paths, nil
}

// render は設定された形式でレポートを整形します
func (a *App) render(rep models.Report) (string, error) {
	if a.config.Format == config.FormatJSON {
		out, err := report.JSON(rep)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRenderReport, err)
		}
		return out, nil
	}
	return report.Text(rep, a.lang), nil
}

// save はレポートをファイルに保存します。テキストはBOM付き、JSONはBOMなし。
func (a *App) save(output string) error {
	var err error
	if a.config.Format == config.FormatJSON {
		err = fileutil.SaveToFile(a.fs, a.config.OutputPath, output)
	} else {
		err = fileutil.SaveToFileWithBOM(a.fs, a.config.OutputPath, output)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFile, err)
	}
	return nil
}
