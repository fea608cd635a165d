package jval

import (
	"hash/fnv"
	"math"
	"strconv"
)

// Equal reports whether a and b are structurally equal. Comparison is
// variant exact: Number(0) and Bool(false) are not equal. Arrays compare
// element-wise in order, Objects as key/value mappings regardless of order.
// Two absent Values are equal; absent never equals a present Value.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	default:
		return true
	}
}

// Equal reports whether v and o are structurally equal; see Equal.
func (v Value) Equal(o Value) bool { return Equal(v, o) }

// Hash returns a hash consistent with Equal. It is stable across processes.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	var tag [1]byte
	switch v.kind {
	case KindArray:
		tag[0] = 'a'
		h.Write(tag[:])
		var buf [8]byte
		for _, e := range v.arr {
			h.Write(putUint64(buf[:], e.Hash()))
		}
	case KindObject:
		tag[0] = 'o'
		h.Write(tag[:])
		// Member hashes are summed so iteration order does not matter.
		var sum uint64
		for k, m := range v.obj {
			mh := fnv.New64a()
			mh.Write([]byte(k))
			mh.Write([]byte{0})
			var buf [8]byte
			mh.Write(putUint64(buf[:], m.Hash()))
			sum += mh.Sum64()
		}
		var buf [8]byte
		h.Write(putUint64(buf[:], sum))
	case KindBool:
		tag[0] = 'f'
		if v.b {
			tag[0] = 't'
		}
		h.Write(tag[:])
	case KindNumber:
		tag[0] = 'n'
		h.Write(tag[:])
		f := v.n
		if f == 0 {
			f = 0 // -0 == +0
		}
		var buf [8]byte
		h.Write(putUint64(buf[:], math.Float64bits(f)))
	case KindString:
		tag[0] = 's'
		h.Write(tag[:])
		h.Write([]byte(v.s))
	case KindNull:
		tag[0] = 'z'
		h.Write(tag[:])
	}
	return h.Sum64()
}

func putUint64(b []byte, u uint64) []byte {
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return b
}

// ---- comparisons against native scalars ----

// EqualString reports whether v is a String equal to s.
func (v Value) EqualString(s string) bool { return v.kind == KindString && v.s == s }

// EqualInt reports whether v is a Number whose value truncated toward zero
// equals i, so Number(3.7) equals 3.
func (v Value) EqualInt(i int) bool {
	if v.kind != KindNumber {
		return false
	}
	t, ok := truncate(v.n)
	return ok && t == i
}

// EqualFloat reports whether v is a Number equal to f.
func (v Value) EqualFloat(f float64) bool { return v.kind == KindNumber && v.n == f }

// EqualBool reports whether v is a Boolean equal to b. Numbers never match.
func (v Value) EqualBool(b bool) bool { return v.kind == KindBool && v.b == b }

// IsNull reports whether v reads as "no value here": either absent or an
// explicit Null. Use Exists or Has to tell the two apart.
func (v Value) IsNull() bool { return v.kind == KindAbsent || v.kind == KindNull }

// GoString implements fmt.GoStringer for %#v.
func (v Value) GoString() string {
	switch v.kind {
	case KindAbsent:
		return "jval.Value{}"
	case KindNull:
		return "jval.Null()"
	case KindBool:
		return "jval.Bool(" + strconv.FormatBool(v.b) + ")"
	case KindNumber:
		return "jval.Number(" + strconv.FormatFloat(v.n, 'g', -1, 64) + ")"
	case KindString:
		return "jval.String(" + strconv.Quote(v.s) + ")"
	default:
		return "jval.Value(" + v.String() + ")"
	}
}
