// Package osr は osu! のリプレイファイル (.osr) を読み込むためのパッケージです。
//
// ファイルは次の順に並んでいます:
//   - ヘッダ: ゲームモード、バージョン、3つの文字列、判定数、スコア、MOD、ライフバー、タイムスタンプ
//   - LZMA圧縮されたアクションデータ (モードごとにレコードの形が異なる)
//   - リプレイID
//
// 基本的な使い方:
//
//	replay, err := osr.DecodeFile("replay.osr", osr.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	switch actions := replay.Actions.(type) {
//	case osr.StdActions:
//	    // カーソル位置とキー入力を処理...
//	case osr.ManiaActions:
//	    // 押されているキーを処理...
//	}
package osr

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Replay は1回分のプレイを表します
type Replay struct {
	Header
	// Actions はヘッダのみのデコードでは nil
	Actions  Actions `json:"actions"`
	RNGSeed  *int32  `json:"rng_seed"`
	ReplayID int64   `json:"replay_id"`
}

// ticksAtUnixEpoch は 0001-01-01 から 1970-01-01 までの .NET ティック数
const ticksAtUnixEpoch = 621355968000000000

// PlayedAt は .NET ティックで保存されたタイムスタンプを time.Time に変換します
func (r *Replay) PlayedAt() time.Time {
	ticks := r.Timestamp - ticksAtUnixEpoch
	sec := ticks / 10_000_000
	nsec := (ticks % 10_000_000) * 100
	return time.Unix(sec, nsec).UTC()
}

// Decode はリプレイファイル全体のバイト列をデコードします
func Decode(data []byte, cfg Config) (*Replay, error) {
	cfg = cfg.withDefaults()
	r := newReader(data, cfg.ByteOrder)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Stringer("mode", header.Mode).
		Int32("game_version", header.GameVersion).
		Int("offset", r.pos).
		Msg("osr: header decoded")

	blockStart := r.pos
	block, err := r.readCompressedBlock()
	if err != nil {
		return nil, err
	}

	var actions Actions
	var seed *int32
	if !cfg.HeaderOnly {
		if header.Mode == ModeUnknown {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, header.Mode)
		}
		raw, err := inflate(block, cfg.DictCap)
		if err != nil {
			return nil, newFormatError("action_data", blockStart, err)
		}
		log.Debug().
			Int("compressed", len(block)).
			Int("inflated", len(raw)).
			Msg("osr: action data inflated")

		actions, seed, err = decodeActions(header.Mode, raw)
		if err != nil {
			return nil, err
		}
	}

	replayID, err := r.readReplayID()
	if err != nil {
		return nil, err
	}

	return assemble(header, actions, seed, replayID), nil
}

// assemble は各段の結果を1つの Replay にまとめます
func assemble(header Header, actions Actions, seed *int32, replayID int64) *Replay {
	return &Replay{
		Header:   header,
		Actions:  actions,
		RNGSeed:  seed,
		ReplayID: replayID,
	}
}
