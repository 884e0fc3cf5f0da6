package app

import "errors"

var (
	// ErrNoReplays はデコード対象のリプレイが1つもない場合のエラー
	ErrNoReplays = errors.New("デコードするリプレイファイルがありません")

	// ErrAllFailed はすべてのリプレイのデコードに失敗した場合のエラー
	ErrAllFailed = errors.New("すべてのリプレイのデコードに失敗しました")

	// ErrFindReplays はリプレイファイルの検索に失敗した場合のエラー
	ErrFindReplays = errors.New("リプレイファイルの検索に失敗しました")

	// ErrRenderReport はレポートの整形に失敗した場合のエラー
	ErrRenderReport = errors.New("レポートの整形に失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
