// Package config はosrdumpコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const Version = "0.1.0"

// 出力形式
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrInvalidFormat は出力形式が text / json 以外の場合のエラー
	ErrInvalidFormat = errors.New("出力形式は text または json を指定してください")

	// ErrNoInput は入力ファイルもディレクトリも指定されていない場合のエラー
	ErrNoInput = errors.New("リプレイファイルまたは --dir を指定してください")
)

// Config はアプリケーションの設定を保持します
type Config struct {
	Paths       []string
	Dir         string
	HeaderOnly  bool
	Format      string
	OutputPath  string
	Workers     int
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s: [flags] <replay.osr>...\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --dir string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory to scan for .osr / .osr.zst files")
		fmt.Fprintln(flag.CommandLine.Output(), "  -i string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdirectory to scan (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --header-only")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tdecode headers only, skip action data")
		fmt.Fprintln(flag.CommandLine.Output(), "  -H\tdecode headers only (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --format string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput format: text or json (default \"text\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -f string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput format (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tsave the report to this file")
		fmt.Fprintln(flag.CommandLine.Output(), "  -w int")
		fmt.Fprintf(flag.CommandLine.Output(), "    \tnumber of decode workers (default %d)\n", runtime.NumCPU())
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 検索ディレクトリ
	flag.StringVar(&config.Dir, "dir", "", "directory to scan for .osr / .osr.zst files")
	flag.StringVar(&config.Dir, "i", "", "directory to scan (shorthand)")

	// ヘッダのみ
	flag.BoolVar(&config.HeaderOnly, "header-only", false, "decode headers only, skip action data")
	flag.BoolVar(&config.HeaderOnly, "H", false, "decode headers only (shorthand)")

	// 出力形式
	flag.StringVar(&config.Format, "format", FormatText, "output format: text or json")
	flag.StringVar(&config.Format, "f", FormatText, "output format (shorthand)")

	// 出力ファイル
	flag.StringVar(&config.OutputPath, "o", "", "save the report to this file")

	// ワーカー数
	flag.IntVar(&config.Workers, "w", runtime.NumCPU(), "number of decode workers")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	config.Paths = flag.Args()
	config.Format = strings.ToLower(config.Format)

	return config
}

// Validate は設定の組み合わせを検証します
func (c *Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if len(c.Paths) == 0 && c.Dir == "" {
		return ErrNoInput
	}
	return nil
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("osrdump version %s\n", Version)
		os.Exit(0)
	}
}

// SetupLogging はグローバルロガーを標準エラー出力に向け、ログレベルを設定します
func SetupLogging(debug bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	logger  zerolog.Logger
}

// NewDebugLogger は標準エラー出力に書き込む新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return NewDebugLoggerTo(zerolog.ConsoleWriter{Out: os.Stderr}, enabled)
}

// NewDebugLoggerTo は w に書き込む新しいDebugLoggerを作成します
func NewDebugLoggerTo(w io.Writer, enabled bool) *DebugLogger {
	return &DebugLogger{
		enabled: enabled,
		logger:  zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		d.logger.Debug().Msg(strings.TrimRight(fmt.Sprintf(format, a...), "\n"))
	}
}
