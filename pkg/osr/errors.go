package osr

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat はリプレイのバイト列が形式に従っていない場合のエラー
	ErrFormat = errors.New("リプレイの形式が不正です")

	// ErrInvalidPresenceByte は文字列フィールドの先頭バイトが 0x00 / 0x0b 以外の場合のエラー
	ErrInvalidPresenceByte = errors.New("文字列フィールドの先頭バイトが不正です")

	// ErrTruncated はデータが途中で終わっている場合のエラー
	ErrTruncated = errors.New("データが途中で終わっています")

	// ErrInvalidUTF8 は文字列がUTF-8として不正な場合のエラー
	ErrInvalidUTF8 = errors.New("UTF-8として不正な文字列です")

	// ErrNegativeLength は長さフィールドが負の値の場合のエラー
	ErrNegativeLength = errors.New("長さフィールドが負の値です")

	// ErrDecompress はLZMAの展開に失敗した場合のエラー
	ErrDecompress = errors.New("アクションデータの展開に失敗しました")

	// ErrInvalidNumber は数値フィールドを解析できない場合のエラー
	ErrInvalidNumber = errors.New("数値として解析できません")

	// ErrTooFewFields はレコードのフィールド数が足りない場合のエラー
	ErrTooFewFields = errors.New("レコードのフィールド数が足りません")

	// ErrUnsupportedMode は未知のゲームモードのアクションを解析しようとした場合のエラー
	ErrUnsupportedMode = errors.New("サポートされていないゲームモードです")
)

// FormatError はデコード中に見つかった形式エラー
type FormatError struct {
	Field  string // 解析していたフィールド
	Offset int    // エラーが発生したバイト位置 (アクションレコードの場合はレコード番号)
	Err    error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (offset %d): %v", e.Field, e.Offset, e.Err)
}

// Unwrap は ErrFormat と元のエラーの両方を返します
func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

func newFormatError(field string, offset int, err error) *FormatError {
	return &FormatError{
		Field:  field,
		Offset: offset,
		Err:    err,
	}
}

// IOError はリプレイファイルの読み込みエラー
type IOError struct {
	Path string
	Err  error
}

// Error はエラーメッセージを返します
func (e *IOError) Error() string {
	return fmt.Sprintf("%sの読み込みエラー: %v", e.Path, e.Err)
}

// Unwrap は元のエラーを返します
func (e *IOError) Unwrap() error {
	return e.Err
}
