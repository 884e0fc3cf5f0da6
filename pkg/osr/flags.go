package osr

import (
	"cmp"
	"strconv"
	"strings"
)

// Descriptor はビットフラグ型ごとの定数表です。
// FlagNames の添字 0 が最下位ビットに対応します。
type Descriptor interface {
	// Name は表示名を返します (例: "Mod")
	Name() string
	// FlagNames は各ビットの名前を返します
	FlagNames() []string
	// ZeroIndexed は値 0 にも名前の枠がある表記かどうかを返します
	ZeroIndexed() bool
}

// Flags は Descriptor で名前付けされた32ビットのフラグ値です。
// 範囲外のビットもそのまま保持します。
type Flags[D Descriptor] int32

// Value は生の整数値を返します
func (f Flags[D]) Value() int32 {
	return int32(f)
}

// Xor はビットごとの排他的論理和を返します
func (f Flags[D]) Xor(other Flags[D]) Flags[D] {
	return f ^ other
}

// And はビットごとの論理積を返します
func (f Flags[D]) And(other Flags[D]) Flags[D] {
	return f & other
}

// Combine は2つのフラグを合成します。
// ビットOR ではなく整数の加算なので、同じビット同士を合成すると値が変わります (1 と 1 → 2)。
func (f Flags[D]) Combine(other Flags[D]) Flags[D] {
	return f + other
}

// Add は整数としての和を返します
func (f Flags[D]) Add(other Flags[D]) int32 {
	return int32(f) + int32(other)
}

// Sub は整数としての差を返します
func (f Flags[D]) Sub(other Flags[D]) int32 {
	return int32(f) - int32(other)
}

// Has は flag のビットがすべて立っているかを返します
func (f Flags[D]) Has(flag Flags[D]) bool {
	return flag != 0 && f&flag == flag
}

// Compare は生の整数値で比較します
func (f Flags[D]) Compare(other Flags[D]) int {
	return cmp.Compare(int32(f), int32(other))
}

// String は "<Name.FLAG_A|FLAG_B: N>" 形式の文字列を返します。
// フラグ名は上位ビットから順に並びます。
func (f Flags[D]) String() string {
	var d D
	names := d.FlagNames()
	zeroIndexed := d.ZeroIndexed()

	count := len(names)
	if zeroIndexed {
		// 値 0 の枠を含めた表の大きさ
		count++
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(d.Name())
	b.WriteByte('.')

	value := uint64(int64(f))
	if value == 0 {
		if zeroIndexed {
			b.WriteByte('0')
		}
	} else {
		limit := flagMax(count, zeroIndexed)
		for bit := len(names) - 1; bit >= 0; bit-- {
			if value >= limit {
				b.WriteString(names[bit])
				value -= limit
				if value == 0 {
					break
				}
				b.WriteByte('|')
			}
			limit >>= 1
		}
	}

	b.WriteString(": ")
	b.WriteString(strconv.FormatInt(int64(f), 10))
	b.WriteByte('>')
	return b.String()
}

// flagMax は単独フラグとして表せる最大値を返します
func flagMax(count int, zeroIndexed bool) uint64 {
	if zeroIndexed {
		return 1 << (count - 2)
	}
	return 1 << (count - 1)
}

// ModDescriptor は Mods の定数表
type ModDescriptor struct{}

func (ModDescriptor) Name() string      { return "Mod" }
func (ModDescriptor) ZeroIndexed() bool { return true }
func (ModDescriptor) FlagNames() []string {
	return []string{
		"NoFail", "Easy", "TouchDevice", "Hidden", "HardRock", "SuddenDeath",
		"DoubleTime", "Relax", "HalfTime", "Nightcore", "Flashlight", "Autoplay",
		"SpunOut", "Autopilot", "Perfect", "Key4", "Key5", "Key6", "Key7", "Key8",
		"FadeIn", "Random", "Cinema", "Target", "Key9", "KeyCoop", "Key1", "Key3",
		"Key2", "ScoreV2", "Mirror",
	}
}

// KeyDescriptor は osu!standard のキー状態の定数表
type KeyDescriptor struct{}

func (KeyDescriptor) Name() string        { return "Key" }
func (KeyDescriptor) ZeroIndexed() bool   { return false }
func (KeyDescriptor) FlagNames() []string { return []string{"M1", "M2", "K1", "K2", "SMOKE"} }

// KeyTaikoDescriptor は太鼓のキー状態の定数表
type KeyTaikoDescriptor struct{}

func (KeyTaikoDescriptor) Name() string      { return "KeyTaiko" }
func (KeyTaikoDescriptor) ZeroIndexed() bool { return false }
func (KeyTaikoDescriptor) FlagNames() []string {
	return []string{"LEFT_DON", "LEFT_KAT", "RIGHT_DON", "RIGHT_KAT"}
}

// KeyManiaDescriptor は mania のキー状態の定数表
type KeyManiaDescriptor struct{}

func (KeyManiaDescriptor) Name() string      { return "KeyMania" }
func (KeyManiaDescriptor) ZeroIndexed() bool { return false }
func (KeyManiaDescriptor) FlagNames() []string {
	return []string{
		"K1", "K2", "K3", "K4", "K5", "K6", "K7", "K8", "K9",
		"K10", "K11", "K12", "K13", "K14", "K15", "K16", "K17", "K18",
	}
}

type (
	// Mods はプレイ時に有効だったMODの組み合わせ
	Mods = Flags[ModDescriptor]
	// Key は osu!standard のキー状態
	Key = Flags[KeyDescriptor]
	// KeyTaiko は太鼓のキー状態
	KeyTaiko = Flags[KeyTaikoDescriptor]
	// KeyMania は mania のキー状態
	KeyMania = Flags[KeyManiaDescriptor]
)

const ModNoMod Mods = 0

const (
	ModNoFail Mods = 1 << iota
	ModEasy
	ModTouchDevice
	ModHidden
	ModHardRock
	ModSuddenDeath
	ModDoubleTime
	ModRelax
	ModHalfTime
	ModNightcore
	ModFlashlight
	ModAutoplay
	ModSpunOut
	ModAutopilot
	ModPerfect
	ModKey4
	ModKey5
	ModKey6
	ModKey7
	ModKey8
	ModFadeIn
	ModRandom
	ModCinema
	ModTarget
	ModKey9
	ModKeyCoop
	ModKey1
	ModKey3
	ModKey2
	ModScoreV2
	ModMirror
)

const (
	KeyM1 Key = 1 << iota
	KeyM2
	KeyK1
	KeyK2
	KeySmoke
)

const (
	KeyTaikoLeftDon KeyTaiko = 1 << iota
	KeyTaikoLeftKat
	KeyTaikoRightDon
	KeyTaikoRightKat
)

const (
	KeyManiaK1 KeyMania = 1 << iota
	KeyManiaK2
	KeyManiaK3
	KeyManiaK4
	KeyManiaK5
	KeyManiaK6
	KeyManiaK7
	KeyManiaK8
	KeyManiaK9
	KeyManiaK10
	KeyManiaK11
	KeyManiaK12
	KeyManiaK13
	KeyManiaK14
	KeyManiaK15
	KeyManiaK16
	KeyManiaK17
	KeyManiaK18
)
