package common

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

const RationalExtType = 1

func init() {
	msgpack.RegisterExt(RationalExtType, (*Rational)(nil))
}

// MsgpackMarshalPanic encodes a nil *Rational as msgpack nil, not as an
// empty extension.
func MsgpackMarshalPanic(val interface{}) []byte {
	if r, ok := val.(*Rational); ok && r == nil {
		val = nil
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	if r, ok := val.(*Rational); ok && r != nil {
		return msgpackUnmarshalRational(data, r)
	}
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %w", hex.EncodeToString(data), err)
}

// msgpack nil skips UnmarshalMsgpack and would leave the zero value 0/0.
func msgpackUnmarshalRational(data []byte, r *Rational) error {
	var v Rational
	err := msgpack.Unmarshal(data, &v)
	if err != nil {
		return fmt.Errorf("MsgpackUnmarshal: %s %w", hex.EncodeToString(data), err)
	}
	if v.d <= 0 {
		return fmt.Errorf("MsgpackUnmarshal: %s %w", hex.EncodeToString(data), ErrZeroDenominator)
	}
	*r = v
	return nil
}
