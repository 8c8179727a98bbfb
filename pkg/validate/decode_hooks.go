package validate

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	timeType    = reflect.TypeOf(time.Time{})
)

// decimalHook — числа и строки из документа в decimal.Decimal.
func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case int, int32, int64:
		return decimal.NewFromInt(cast.ToInt64(v)), nil
	}
	f, err := cast.ToFloat64E(data)
	if err != nil {
		return nil, err
	}
	return decimal.NewFromFloat(f), nil
}

// timeHook — время документа: time.Time (Firestore), unix millis или строка (RFC3339 и др.).
func timeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}
	switch v := data.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		t, err := cast.ToTimeE(v)
		if err != nil {
			return nil, err
		}
		return t.UTC(), nil
	}
	ms, err := cast.ToInt64E(data)
	if err != nil {
		return nil, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

func decodeInto(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(decimalHook, timeHook),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
