package osr

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

// seedTimeDelta は乱数シードを運ぶ末尾レコードの time_delta
const seedTimeDelta = -12345

type action interface {
	StdAction | TaikoAction | CatchAction | ManiaAction
	timeDelta() int64
}

// decodeActions はモードに応じてアクション列を解析します
func decodeActions(mode GameMode, data []byte) (Actions, *int32, error) {
	switch mode {
	case ModeStd:
		a, seed, err := decodeActionStream(data, 4, parseStdAction)
		return StdActions(a), seed, err
	case ModeTaiko:
		a, seed, err := decodeActionStream(data, 4, parseTaikoAction)
		return TaikoActions(a), seed, err
	case ModeCatch:
		a, seed, err := decodeActionStream(data, 4, parseCatchAction)
		return CatchActions(a), seed, err
	case ModeMania:
		a, seed, err := decodeActionStream(data, 2, parseManiaAction)
		return ManiaActions(a), seed, err
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}
}

// decodeActionStream は ',' 区切りのレコードと '|' 区切りのフィールドを解析します。
// 最後のアクションの time_delta が -12345 で、最後のレコードの4番目のフィールドが
// 整数として読めれば、そのアクションを取り除いて乱数シードとして返します。
func decodeActionStream[T action](data []byte, minFields int, parse func([][]byte) (T, error)) ([]T, *int32, error) {
	records := bytes.Split(data, []byte{','})
	trailingComma := len(records[len(records)-1]) == 0

	actions := make([]T, 0, len(records))
	for i, record := range records {
		fields := bytes.Split(record, []byte{'|'})
		if len(fields[0]) == 0 {
			continue
		}
		if len(fields) < minFields {
			return nil, nil, newFormatError("action", i,
				fmt.Errorf("%w: %d 個必要ですが %d 個です", ErrTooFewFields, minFields, len(fields)))
		}
		a, err := parse(fields)
		if err != nil {
			return nil, nil, newFormatError("action", i, err)
		}
		actions = append(actions, a)
	}

	seed := candidateSeed(records, trailingComma)

	log.Debug().
		Int("records", len(records)).
		Int("actions", len(actions)).
		Bool("trailing_comma", trailingComma).
		Msg("osr: action stream split")

	if len(actions) == 0 {
		return actions, nil, nil
	}
	last := actions[len(actions)-1]
	if last.timeDelta() == seedTimeDelta && seed != nil {
		return actions[:len(actions)-1], seed, nil
	}
	return actions, nil, nil
}

// candidateSeed は最後の実レコードの4番目のフィールドをシード候補として読みます
func candidateSeed(records [][]byte, trailingComma bool) *int32 {
	index := len(records) - 1
	if trailingComma {
		index--
	}
	if index < 0 {
		return nil
	}
	fields := bytes.Split(records[index], []byte{'|'})
	if len(fields) < 4 {
		return nil
	}
	v, err := atoi(fields[3], 32)
	if err != nil {
		return nil
	}
	seed := int32(v)
	return &seed
}

func parseStdAction(fields [][]byte) (StdAction, error) {
	var a StdAction
	var err error
	if a.TimeDelta, err = atoi(fields[0], 64); err != nil {
		return a, err
	}
	if a.X, err = parseFloat(fields[1]); err != nil {
		return a, err
	}
	if a.Y, err = parseFloat(fields[2]); err != nil {
		return a, err
	}
	keys, err := atoi(fields[3], 32)
	if err != nil {
		return a, err
	}
	a.Keys = Key(keys)
	return a, nil
}

func parseTaikoAction(fields [][]byte) (TaikoAction, error) {
	var a TaikoAction
	var err error
	if a.TimeDelta, err = atoi(fields[0], 64); err != nil {
		return a, err
	}
	if a.X, err = atoi(fields[1], 64); err != nil {
		return a, err
	}
	keys, err := atoi(fields[3], 32)
	if err != nil {
		return a, err
	}
	a.Keys = KeyTaiko(keys)
	return a, nil
}

func parseCatchAction(fields [][]byte) (CatchAction, error) {
	var a CatchAction
	var err error
	if a.TimeDelta, err = atoi(fields[0], 64); err != nil {
		return a, err
	}
	if a.X, err = parseFloat(fields[1]); err != nil {
		return a, err
	}
	dash, err := atoi(fields[3], 32)
	if err != nil {
		return a, err
	}
	a.Dashing = dash == 1
	return a, nil
}

func parseManiaAction(fields [][]byte) (ManiaAction, error) {
	var a ManiaAction
	var err error
	if a.TimeDelta, err = atoi(fields[0], 64); err != nil {
		return a, err
	}
	keys, err := atoi(fields[1], 32)
	if err != nil {
		return a, err
	}
	a.Keys = KeyMania(keys)
	return a, nil
}

// atoi は先頭の符号と数字部分だけを整数として読みます ("320.5" → 320)。
// 数字が1つもない場合と桁あふれはエラーです。
func atoi(b []byte, bitSize int) (int64, error) {
	end := 0
	if end < len(b) && (b[end] == '-' || b[end] == '+') {
		end++
	}
	digits := end
	for end < len(b) && b[end] >= '0' && b[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, b)
	}
	v, err := strconv.ParseInt(string(b[:end]), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, b)
	}
	return v, nil
}

func parseFloat(b []byte) (float64, error) {
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, b)
	}
	return v, nil
}
