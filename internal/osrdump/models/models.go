// Package models はosrdumpコマンドで使用するデータモデルを定義します
package models

import "time"

// Counts は判定ごとの個数
type Counts struct {
	Great int16 `json:"300"`
	Good  int16 `json:"100"`
	Meh   int16 `json:"50"`
	Geki  int16 `json:"geki"`
	Katu  int16 `json:"katu"`
	Miss  int16 `json:"miss"`
}

// Summary は1リプレイ分の要約
type Summary struct {
	Path        string    `json:"path"`
	Mode        string    `json:"mode"`
	GameVersion int32     `json:"game_version"`
	Player      string    `json:"player"`
	BeatmapHash string    `json:"beatmap_hash"`
	Score       int32     `json:"score"`
	MaxCombo    int16     `json:"max_combo"`
	Perfect     bool      `json:"perfect"`
	Counts      Counts    `json:"counts"`
	Mods        string    `json:"mods"`
	ModsValue   int32     `json:"mods_value"`
	PlayedAt    time.Time `json:"played_at"`
	LifeBar     int       `json:"life_bar_points"`
	Actions     int       `json:"actions"` // ヘッダのみの場合は -1
	RNGSeed     *int32    `json:"rng_seed"`
	ReplayID    int64     `json:"replay_id"`
}

// Failure はデコードに失敗したファイル
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Report はosrdumpの出力全体
type Report struct {
	Replays  []Summary `json:"replays"`
	Failures []Failure `json:"failures,omitempty"`
}
