package node

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math/big"
	"slices"
)

// Equal reports structural equality. Object key order is not significant;
// numbers compare by value when their texts differ (1.0 equals 1).
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Object:
		y := b.(*Object)
		if x.Len() != y.Len() {
			return false
		}
		for k, v := range x.All() {
			w, ok := y.Get(k)
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case *Array:
		y := b.(*Array)
		if x.Len() != y.Len() {
			return false
		}
		for i, v := range x.All() {
			if !Equal(v, y.At(i)) {
				return false
			}
		}
		return true
	case Number:
		return numberEqual(x, b.(Number))
	default:
		return a == b
	}
}

func numberEqual(x, y Number) bool {
	if x == y {
		return true
	}
	rx, ok1 := new(big.Rat).SetString(string(x))
	ry, ok2 := new(big.Rat).SetString(string(y))
	return ok1 && ok2 && rx.Cmp(ry) == 0
}

// Hash returns an FNV-64a digest consistent with Equal.
func Hash(n Node) uint64 {
	h := fnv.New64a()
	hashNode(h, n)
	return h.Sum64()
}

func hashNode(h hash.Hash64, n Node) {
	if n == nil {
		_, _ = h.Write([]byte{0xff})
		return
	}
	_, _ = h.Write([]byte{byte(n.Kind())})
	switch x := n.(type) {
	case *Object:
		keys := x.Keys()
		slices.Sort(keys)
		for _, k := range keys {
			writeString(h, k)
			v, _ := x.Get(k)
			hashNode(h, v)
		}
	case *Array:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(x.Len()))
		_, _ = h.Write(buf[:])
		for _, v := range x.All() {
			hashNode(h, v)
		}
	case Number:
		if r, ok := new(big.Rat).SetString(string(x)); ok {
			writeString(h, r.String())
		} else {
			writeString(h, string(x))
		}
	case String:
		writeString(h, string(x))
	case Bool:
		if x {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
	}
}

func writeString(h hash.Hash64, s string) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(s))
}
