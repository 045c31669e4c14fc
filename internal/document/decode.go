package document

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"
)

// ErrDocumentShape is returned when a value expected to be a container
// is neither a map nor a sequence.
var ErrDocumentShape = errors.New("document has unexpected shape")

// Decode parses a strict JSON document into a node tree. The top-level
// value must be an object or an array.
func Decode(data []byte) (*Node, error) {
	d := jx.DecodeBytes(data)

	n, err := decodeValue(d)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	if !n.IsContainer() {
		return nil, fmt.Errorf("%w: top-level value is %s, want object or array", ErrDocumentShape, n.Kind())
	}
	return n, nil
}

func decodeValue(d *jx.Decoder) (*Node, error) {
	switch d.Next() {
	case jx.Object:
		var pairs []Pair
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := decodeValue(d)
			if err != nil {
				return err
			}
			pairs = append(pairs, Pair{Key: key, Value: v})
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &Node{kind: KindMap, pairs: pairs}, nil

	case jx.Array:
		var elems []*Node
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := decodeValue(d)
			if err != nil {
				return err
			}
			elems = append(elems, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &Node{kind: KindSequence, elems: elems}, nil

	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil

	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return nil, err
		}
		if num.IsInt() {
			i, err := num.Int64()
			if err != nil {
				return nil, err
			}
			return NewInt(i), nil
		}
		f, err := num.Float64()
		if err != nil {
			return nil, err
		}
		return NewFloat(f), nil

	case jx.Bool:
		b, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return NewBool(b), nil

	case jx.Null:
		if err := d.Null(); err != nil {
			return nil, err
		}
		return NewNull(), nil

	default:
		return nil, errors.New("unexpected token")
	}
}
