package osr

// Header はアクションデータより前にある固定・可変長のフィールド群
type Header struct {
	Mode         GameMode       `json:"mode"`
	GameVersion  int32          `json:"game_version"`
	BeatmapHash  *string        `json:"beatmap_hash"`
	Username     *string        `json:"username"`
	ReplayHash   *string        `json:"replay_hash"`
	Count300     int16          `json:"count_300"`
	Count100     int16          `json:"count_100"`
	Count50      int16          `json:"count_50"`
	CountGeki    int16          `json:"count_geki"`
	CountKatu    int16          `json:"count_katu"`
	CountMiss    int16          `json:"count_miss"`
	Score        int32          `json:"score"`
	MaxCombo     int16          `json:"max_combo"`
	Perfect      bool           `json:"perfect"`
	Mods         Mods           `json:"mods"`
	LifeBarGraph []LifeBarState `json:"life_bar_graph"`
	Timestamp    int64          `json:"timestamp"`
}

// decodeHeader はファイル先頭からタイムスタンプまでを順に読み込みます
func decodeHeader(r *reader) (Header, error) {
	var h Header
	var err error

	mode, err := r.uint8("mode")
	if err != nil {
		return h, err
	}
	h.Mode = gameModeFromByte(mode)

	if h.GameVersion, err = r.int32("game_version"); err != nil {
		return h, err
	}
	if h.BeatmapHash, err = r.readString("beatmap_hash"); err != nil {
		return h, err
	}
	if h.Username, err = r.readString("username"); err != nil {
		return h, err
	}
	if h.ReplayHash, err = r.readString("replay_hash"); err != nil {
		return h, err
	}

	counts := []struct {
		field string
		dst   *int16
	}{
		{"count_300", &h.Count300},
		{"count_100", &h.Count100},
		{"count_50", &h.Count50},
		{"count_geki", &h.CountGeki},
		{"count_katu", &h.CountKatu},
		{"count_miss", &h.CountMiss},
	}
	for _, c := range counts {
		if *c.dst, err = r.int16(c.field); err != nil {
			return h, err
		}
	}

	if h.Score, err = r.int32("score"); err != nil {
		return h, err
	}
	if h.MaxCombo, err = r.int16("max_combo"); err != nil {
		return h, err
	}
	perfect, err := r.uint8("perfect")
	if err != nil {
		return h, err
	}
	h.Perfect = perfect == 1

	mods, err := r.int32("mods")
	if err != nil {
		return h, err
	}
	h.Mods = Mods(mods)

	if h.LifeBarGraph, err = r.readLifeBarGraph(); err != nil {
		return h, err
	}
	if h.Timestamp, err = r.int64("timestamp"); err != nil {
		return h, err
	}
	return h, nil
}
