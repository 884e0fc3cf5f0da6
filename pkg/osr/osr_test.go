package osr

import (
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestDecode_HeaderOnly(t *testing.T) {
	// 圧縮データは不正なバイト列だが、ヘッダのみなので展開されない
	b := &replayBuilder{}
	b.header(0).i32(4).raw([]byte{0xde, 0xad, 0xbe, 0xef}).i64(99)

	replay, err := Decode(b.bytes(), Config{HeaderOnly: true})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if replay.Mode != ModeStd {
		t.Errorf("Mode = %v, want %v", replay.Mode, ModeStd)
	}
	if replay.LifeBarGraph != nil {
		t.Errorf("LifeBarGraph = %v, want nil", replay.LifeBarGraph)
	}
	if replay.Actions != nil {
		t.Errorf("Actions = %v, want nil", replay.Actions)
	}
	if replay.RNGSeed != nil {
		t.Errorf("RNGSeed = %d, want nil", *replay.RNGSeed)
	}
	if replay.ReplayID != 99 {
		t.Errorf("ReplayID = %d, want 99", replay.ReplayID)
	}
}

func TestDecode_Full(t *testing.T) {
	data := buildReplay(t, 0, "0|256|-500|0,-1|256|-500|0,16|100|200|1,-12345|0|0|555,", 4242)

	replay, err := Decode(data, DefaultConfig())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	h := replay.Header
	if h.GameVersion != 20240101 {
		t.Errorf("GameVersion = %d, want 20240101", h.GameVersion)
	}
	if h.BeatmapHash == nil || *h.BeatmapHash != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Errorf("BeatmapHash = %v", h.BeatmapHash)
	}
	if h.Username == nil || *h.Username != "peppy" {
		t.Errorf("Username = %v", h.Username)
	}
	if h.ReplayHash != nil {
		t.Errorf("ReplayHash = %q, want nil", *h.ReplayHash)
	}
	gotCounts := []int16{h.Count300, h.Count100, h.Count50, h.CountGeki, h.CountKatu, h.CountMiss}
	if !reflect.DeepEqual(gotCounts, []int16{300, 100, 50, 30, 10, 1}) {
		t.Errorf("counts = %v", gotCounts)
	}
	if h.Score != 1234567 || h.MaxCombo != 512 || h.Perfect {
		t.Errorf("Score/MaxCombo/Perfect = %d/%d/%v", h.Score, h.MaxCombo, h.Perfect)
	}
	if h.Mods != ModHidden|ModDoubleTime {
		t.Errorf("Mods = %v", h.Mods)
	}

	actions, ok := replay.Actions.(StdActions)
	if !ok {
		t.Fatalf("Actions の型 = %T, want StdActions", replay.Actions)
	}
	if len(actions) != 3 {
		t.Fatalf("len(Actions) = %d, want 3", len(actions))
	}
	if actions[2] != (StdAction{TimeDelta: 16, X: 100, Y: 200, Keys: KeyM1}) {
		t.Errorf("Actions[2] = %+v", actions[2])
	}
	if replay.RNGSeed == nil || *replay.RNGSeed != 555 {
		t.Errorf("RNGSeed = %v, want 555", replay.RNGSeed)
	}
	if replay.ReplayID != 4242 {
		t.Errorf("ReplayID = %d, want 4242", replay.ReplayID)
	}
}

func TestDecode_AllModes(t *testing.T) {
	tests := []struct {
		mode uint8
		data string
		want GameMode
	}{
		{1, "1|320|0|1,", ModeTaiko},
		{2, "1|100|0|1,", ModeCatch},
		{3, "1|15,", ModeMania},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			replay, err := Decode(buildReplay(t, tt.mode, tt.data, 1), Config{})
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if replay.Mode != tt.want || replay.Actions.Mode() != tt.want {
				t.Errorf("Mode = %v / %v, want %v", replay.Mode, replay.Actions.Mode(), tt.want)
			}
			if replay.Actions.Len() != 1 {
				t.Errorf("Len() = %d, want 1", replay.Actions.Len())
			}
		})
	}
}

func TestDecode_UnknownMode(t *testing.T) {
	data := buildReplay(t, 9, "1|0|0|0,", 1)

	// ヘッダのみなら未知のモードでも読める
	replay, err := Decode(data, Config{HeaderOnly: true})
	if err != nil {
		t.Fatalf("Decode(HeaderOnly) error = %v", err)
	}
	if replay.Mode != ModeUnknown {
		t.Errorf("Mode = %v, want %v", replay.Mode, ModeUnknown)
	}

	_, err = Decode(data, Config{})
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Fatalf("Decode() error = %v, want ErrUnsupportedMode", err)
	}
	if errors.Is(err, ErrFormat) {
		t.Error("未知のモードは形式エラーではありません")
	}
}

func TestDecode_LifeBarGraph(t *testing.T) {
	b := &replayBuilder{}
	b.u8(0).i32(1).noStr().noStr().noStr()
	b.i16(0).i16(0).i16(0).i16(0).i16(0).i16(0)
	b.i32(0).i16(0).u8(1).i32(0)
	b.str("0|1,2500|0.5,")
	b.i64(0).i32(0).i64(7)

	replay, err := Decode(b.bytes(), Config{HeaderOnly: true})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []LifeBarState{{Time: 0, Life: 1}, {Time: 2500, Life: 0.5}}
	if !reflect.DeepEqual(replay.LifeBarGraph, want) {
		t.Errorf("LifeBarGraph = %v, want %v", replay.LifeBarGraph, want)
	}
	if !replay.Perfect {
		t.Error("Perfect = false, want true")
	}
}

func TestDecode_ReplayIDFallback(t *testing.T) {
	b := &replayBuilder{}
	b.header(0).i32(0).i32(-5)

	replay, err := Decode(b.bytes(), Config{HeaderOnly: true})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if replay.ReplayID != -5 {
		t.Errorf("ReplayID = %d, want -5", replay.ReplayID)
	}
}

func TestDecode_Errors(t *testing.T) {
	full := buildReplay(t, 0, "1|0|0|0,", 1)
	headerLen := len((&replayBuilder{}).header(0).bytes())

	badPresence := (&replayBuilder{}).u8(0).i32(1).u8(0x01).bytes()

	negative := (&replayBuilder{}).header(0).i32(-1).i64(0).bytes()

	corrupt := (&replayBuilder{}).header(0).i32(4).raw([]byte{1, 2, 3, 4}).i64(0).bytes()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"空のデータ", nil, ErrTruncated},
		{"ヘッダの途中で終わる", full[:headerLen-3], ErrTruncated},
		{"圧縮データの途中で終わる", full[:headerLen+10], ErrTruncated},
		{"リプレイIDがない", full[:len(full)-8], ErrTruncated},
		{"文字列の存在バイトが不正", badPresence, ErrInvalidPresenceByte},
		{"圧縮データ長が負", negative, ErrNegativeLength},
		{"LZMAとして不正", corrupt, ErrDecompress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data, Config{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("Decode() error = %v, ErrFormat としても判定できるべき", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("Decode() error = %T, want *FormatError", err)
			}
		})
	}
}

func TestDecode_BigEndian(t *testing.T) {
	var data []byte
	data = append(data, 0)
	data = binary.BigEndian.AppendUint32(data, 7)
	data = append(data, 0, 0, 0)
	data = append(data, make([]byte, 12)...)
	data = binary.BigEndian.AppendUint32(data, 1000)
	data = append(data, 0, 0, 0)
	data = binary.BigEndian.AppendUint32(data, uint32(ModHidden))
	data = append(data, 0)
	data = binary.BigEndian.AppendUint64(data, 0)
	data = binary.BigEndian.AppendUint32(data, 0)
	data = binary.BigEndian.AppendUint64(data, 3)

	replay, err := Decode(data, Config{ByteOrder: binary.BigEndian, HeaderOnly: true})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if replay.GameVersion != 7 || replay.Score != 1000 || replay.Mods != ModHidden || replay.ReplayID != 3 {
		t.Errorf("replay = %+v", replay.Header)
	}
}

func TestReplay_PlayedAt(t *testing.T) {
	r := &Replay{Header: Header{Timestamp: 637134336000000000}}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := r.PlayedAt(); !got.Equal(want) {
		t.Errorf("PlayedAt() = %v, want %v", got, want)
	}
}

func TestGameMode_String(t *testing.T) {
	tests := map[GameMode]string{
		ModeStd:     "STD",
		ModeTaiko:   "TAIKO",
		ModeCatch:   "CTB",
		ModeMania:   "MANIA",
		ModeUnknown: "UNKNOWN",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
	if got := gameModeFromByte(200); got != ModeUnknown {
		t.Errorf("gameModeFromByte(200) = %v, want %v", got, ModeUnknown)
	}
}
