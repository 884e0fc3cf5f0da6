package osr

// GameMode はリプレイのゲームモード
type GameMode int8

const (
	ModeStd GameMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
	ModeUnknown
)

// gameModeFromByte は先頭バイトをゲームモードに変換します。
// 未知の値はエラーにせず ModeUnknown にします。
func gameModeFromByte(b uint8) GameMode {
	switch m := GameMode(int8(b)); m {
	case ModeStd, ModeTaiko, ModeCatch, ModeMania:
		return m
	default:
		return ModeUnknown
	}
}

// String はモード名を返します
func (m GameMode) String() string {
	switch m {
	case ModeStd:
		return "STD"
	case ModeTaiko:
		return "TAIKO"
	case ModeCatch:
		return "CTB"
	case ModeMania:
		return "MANIA"
	default:
		return "UNKNOWN"
	}
}

// MarshalText はモード名をテキストとして返します
func (m GameMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
