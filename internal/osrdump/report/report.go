// Package report はデコード結果を要約し、テキストまたはJSONとして出力します
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shiroemons/go-osr/internal/osrdump/models"
	"github.com/shiroemons/go-osr/pkg/osr"
)

// timeLayout はプレイ日時の表示形式
const timeLayout = "2006-01-02 15:04:05 MST"

// Build はデコード結果を入力順のまま要約と失敗に振り分けます
func Build(results []osr.FileResult) models.Report {
	report := models.Report{Replays: []models.Summary{}}
	for _, res := range results {
		if res.Err != nil {
			report.Failures = append(report.Failures, models.Failure{Path: res.Path, Error: res.Err.Error()})
			continue
		}
		report.Replays = append(report.Replays, Summarize(res.Path, res.Replay))
	}
	return report
}

// Summarize は1リプレイ分の要約を作成します
func Summarize(path string, r *osr.Replay) models.Summary {
	s := models.Summary{
		Path:        path,
		Mode:        r.Mode.String(),
		GameVersion: r.GameVersion,
		Player:      deref(r.Username),
		BeatmapHash: deref(r.BeatmapHash),
		Score:       r.Score,
		MaxCombo:    r.MaxCombo,
		Perfect:     r.Perfect,
		Counts: models.Counts{
			Great: r.Count300,
			Good:  r.Count100,
			Meh:   r.Count50,
			Geki:  r.CountGeki,
			Katu:  r.CountKatu,
			Miss:  r.CountMiss,
		},
		Mods:      r.Mods.String(),
		ModsValue: r.Mods.Value(),
		PlayedAt:  r.PlayedAt(),
		LifeBar:   len(r.LifeBarGraph),
		Actions:   -1,
		RNGSeed:   r.RNGSeed,
		ReplayID:  r.ReplayID,
	}
	if r.Actions != nil {
		s.Actions = r.Actions.Len()
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Text はレポートを人が読むためのテキストに整形します。数値は tag の書式で桁区切りします。
func Text(report models.Report, tag language.Tag) string {
	p := message.NewPrinter(tag)
	var builder strings.Builder

	for i, s := range report.Replays {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("# %s\n", s.Path))
		builder.WriteString(fmt.Sprintf("モード: %s  バージョン: %s\n", s.Mode, strconv.Itoa(int(s.GameVersion))))
		builder.WriteString(fmt.Sprintf("プレイヤー: %s\n", s.Player))
		builder.WriteString(fmt.Sprintf("譜面ハッシュ: %s\n", s.BeatmapHash))
		builder.WriteString(p.Sprintf("スコア: %d  最大コンボ: %d  フルコンボ: %s\n", s.Score, s.MaxCombo, yesNo(s.Perfect)))
		builder.WriteString(p.Sprintf("判定: 300=%d 100=%d 50=%d 激=%d 喝=%d ミス=%d\n",
			s.Counts.Great, s.Counts.Good, s.Counts.Meh, s.Counts.Geki, s.Counts.Katu, s.Counts.Miss))
		builder.WriteString(fmt.Sprintf("MOD: %s\n", s.Mods))
		builder.WriteString(fmt.Sprintf("プレイ日時: %s\n", s.PlayedAt.Format(timeLayout)))

		switch {
		case s.Actions < 0:
			builder.WriteString("アクション: (ヘッダのみ)\n")
		case s.RNGSeed != nil:
			builder.WriteString(p.Sprintf("アクション: %d (シード %s)\n", s.Actions, strconv.Itoa(int(*s.RNGSeed))))
		default:
			builder.WriteString(p.Sprintf("アクション: %d\n", s.Actions))
		}
		builder.WriteString(fmt.Sprintf("リプレイID: %s\n", strconv.FormatInt(s.ReplayID, 10)))
	}

	return builder.String()
}

// Failures は失敗したファイルの一覧をテキストに整形します
func Failures(report models.Report) string {
	var builder strings.Builder
	for _, f := range report.Failures {
		builder.WriteString(fmt.Sprintf("%s: %s\n", f.Path, f.Error))
	}
	return builder.String()
}

// JSON はレポートをインデント付きのJSONに整形します
func JSON(report models.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func yesNo(b bool) string {
	if b {
		return "はい"
	}
	return "いいえ"
}
