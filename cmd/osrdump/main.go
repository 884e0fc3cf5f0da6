package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiroemons/go-osr/internal/osrdump/app"
	"github.com/shiroemons/go-osr/internal/osrdump/config"
)

func main() {
	// コマンドライン引数の解析
	cfg := config.ParseFlags()

	// バージョン表示の処理
	config.HandleVersion(cfg.ShowVersion)

	config.SetupLogging(cfg.DebugMode)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	// Ctrl+C で未処理のファイルを打ち切る
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// アプリケーションの実行
	application := app.New(cfg)
	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		stop()
		os.Exit(1)
	}
}
