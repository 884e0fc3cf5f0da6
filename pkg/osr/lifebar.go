package osr

import (
	"fmt"
	"strconv"
	"strings"
)

// LifeBarState はライフバーの1点 (時刻ミリ秒, 残りライフ 0〜1)
type LifeBarState struct {
	Time uint32  `json:"time"`
	Life float32 `json:"life"`
}

// parseLifeBarGraph は "time|life,time|life,..." 形式の文字列を解析します。
// '|' を含まない区間は読み飛ばし、1点も得られなければ nil を返します。
func parseLifeBarGraph(text *string) ([]LifeBarState, error) {
	if text == nil {
		return nil, nil
	}

	var states []LifeBarState
	for _, segment := range strings.Split(*text, ",") {
		timeText, lifeText, ok := strings.Cut(segment, "|")
		if !ok {
			continue
		}
		t, err := strconv.ParseUint(timeText, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: time=%q", ErrInvalidNumber, timeText)
		}
		life, err := strconv.ParseFloat(lifeText, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: life=%q", ErrInvalidNumber, lifeText)
		}
		states = append(states, LifeBarState{Time: uint32(t), Life: float32(life)})
	}

	if len(states) == 0 {
		return nil, nil
	}
	return states, nil
}

// readLifeBarGraph はライフバーの文字列フィールドを読み込んで解析します
func (r *reader) readLifeBarGraph() ([]LifeBarState, error) {
	start := r.pos
	text, err := r.readString("life_bar_graph")
	if err != nil {
		return nil, err
	}
	states, err := parseLifeBarGraph(text)
	if err != nil {
		return nil, newFormatError("life_bar_graph", start, err)
	}
	return states, nil
}
