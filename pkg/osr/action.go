package osr

// StdAction は osu!standard の入力1件
type StdAction struct {
	TimeDelta int64   `json:"time_delta"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Keys      Key     `json:"keys"`
}

// TaikoAction は太鼓の入力1件
type TaikoAction struct {
	TimeDelta int64    `json:"time_delta"`
	X         int64    `json:"x"`
	Keys      KeyTaiko `json:"keys"`
}

// CatchAction は catch the beat の入力1件
type CatchAction struct {
	TimeDelta int64   `json:"time_delta"`
	X         float64 `json:"x"`
	Dashing   bool    `json:"dashing"`
}

// ManiaAction は mania の入力1件
type ManiaAction struct {
	TimeDelta int64    `json:"time_delta"`
	Keys      KeyMania `json:"keys"`
}

// Actions はモードごとの入力列です。
// 実体は StdActions / TaikoActions / CatchActions / ManiaActions のいずれかで、
// 型スイッチで取り出します。
type Actions interface {
	Mode() GameMode
	Len() int
	actions()
}

type (
	StdActions   []StdAction
	TaikoActions []TaikoAction
	CatchActions []CatchAction
	ManiaActions []ManiaAction
)

func (StdActions) Mode() GameMode   { return ModeStd }
func (TaikoActions) Mode() GameMode { return ModeTaiko }
func (CatchActions) Mode() GameMode { return ModeCatch }
func (ManiaActions) Mode() GameMode { return ModeMania }

func (a StdActions) Len() int   { return len(a) }
func (a TaikoActions) Len() int { return len(a) }
func (a CatchActions) Len() int { return len(a) }
func (a ManiaActions) Len() int { return len(a) }

func (StdActions) actions()   {}
func (TaikoActions) actions() {}
func (CatchActions) actions() {}
func (ManiaActions) actions() {}

func (a StdAction) timeDelta() int64   { return a.TimeDelta }
func (a TaikoAction) timeDelta() int64 { return a.TimeDelta }
func (a CatchAction) timeDelta() int64 { return a.TimeDelta }
func (a ManiaAction) timeDelta() int64 { return a.TimeDelta }
