package bytebuffer

import (
	"reflect"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Packable is implemented by types that know how to write themselves to a
// ByteBuffer. Encode, the containers and Pack use it in place of the default
// encoding.
type Packable interface {
	MarshalBuffer(b *ByteBuffer)
}

// Unpackable is the reading side of Packable
type Unpackable interface {
	UnmarshalBuffer(b *ByteBuffer)
}

var (
	packableType   = reflect.TypeOf((*Packable)(nil)).Elem()
	unpackableType = reflect.TypeOf((*Unpackable)(nil)).Elem()
)

// typeCheck caches the result of checking a type for Encode or Decode
type typeCheck struct {
	sync.Map // reflect.Type -> error
}

var (
	encodeChecks typeCheck
	decodeChecks typeCheck
)

func (c *typeCheck) check(t reflect.Type, iface reflect.Type) error {
	if x, ok := c.Load(t); ok {
		if x == nil {
			return nil
		}
		return x.(error)
	}

	err := supported(t, iface, make(map[reflect.Type]bool))
	c.Store(t, err)
	return err
}

// supported reports whether values of t have a binary representation. iface is
// the interface (Packable or Unpackable) that overrides the default encoding.
func supported(t reflect.Type, iface reflect.Type, seen map[reflect.Type]bool) error {
	if t.Implements(iface) || reflect.PointerTo(t).Implements(iface) {
		return nil
	}

	if seen[t] {
		return nil
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return nil
	case reflect.Slice, reflect.Array, reflect.Pointer:
		return supported(t.Elem(), iface, seen)
	case reflect.Map:
		if err := supported(t.Key(), iface, seen); err != nil {
			return err
		}
		return supported(t.Elem(), iface, seen)
	case reflect.Interface:
		// resolved per value on the writing side, a reader cannot know what to build
		if iface == packableType {
			return nil
		}
	}

	return errors.Wrapf(ErrUnsupportedType, "%v", t)
}

// Encode appends the binary representation of val at the write cursor.
//
// Fixed width scalars are written in native layout and strings with a uint32
// length prefix. Slices and arrays are written as a uint32 element count followed
// by every element, maps as a uint32 entry count followed by every key and value,
// with the keys sorted when they are numbers, strings or bools. Pointers are
// followed, a nil pointer is written as the zero value it points to. Types that
// implement Packable write themselves.
//
// int, uint and uintptr are not fixed width and are rejected with
// ErrUnsupportedType, as are channels, funcs and structs that do not implement
// Packable. Type errors are detected before anything is written.
func Encode(b *ByteBuffer, val interface{}) error {
	if p, ok := val.(Packable); ok && !isNilPointer(val) {
		p.MarshalBuffer(b)
		return nil
	}

	switch v := val.(type) {
	case bool:
		Append(b, v)
	case int8:
		Append(b, v)
	case int16:
		Append(b, v)
	case int32:
		Append(b, v)
	case int64:
		Append(b, v)
	case uint8:
		Append(b, v)
	case uint16:
		Append(b, v)
	case uint32:
		Append(b, v)
	case uint64:
		Append(b, v)
	case float32:
		Append(b, v)
	case float64:
		Append(b, v)
	case string:
		b.AppendString(v)
	case []byte:
		Append(b, uint32(len(v)))
		appendRaw(b, v)
	case nil:
		return errors.Wrap(ErrUnsupportedType, "nil")
	default:
		rv := reflect.ValueOf(val)
		if err := encodeChecks.check(rv.Type(), packableType); err != nil {
			return err
		}
		return encodeValue(b, rv)
	}

	return nil
}

func encodeValue(b *ByteBuffer, rv reflect.Value) error {
	t := rv.Type()

	switch {
	case t.Kind() == reflect.Interface:
	case t.Implements(packableType) && !(t.Kind() == reflect.Pointer && rv.IsNil()):
		rv.Interface().(Packable).MarshalBuffer(b)
		return nil
	case reflect.PointerTo(t).Implements(packableType):
		p := reflect.New(t)
		p.Elem().Set(rv)
		p.Interface().(Packable).MarshalBuffer(b)
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		Append(b, rv.Bool())
	case reflect.Int8:
		Append(b, int8(rv.Int()))
	case reflect.Int16:
		Append(b, int16(rv.Int()))
	case reflect.Int32:
		Append(b, int32(rv.Int()))
	case reflect.Int64:
		Append(b, rv.Int())
	case reflect.Uint8:
		Append(b, uint8(rv.Uint()))
	case reflect.Uint16:
		Append(b, uint16(rv.Uint()))
	case reflect.Uint32:
		Append(b, uint32(rv.Uint()))
	case reflect.Uint64:
		Append(b, rv.Uint())
	case reflect.Float32:
		Append(b, float32(rv.Float()))
	case reflect.Float64:
		Append(b, rv.Float())
	case reflect.String:
		b.AppendString(rv.String())

	case reflect.Slice, reflect.Array:
		n := rv.Len()
		Append(b, uint32(n))
		for i := 0; i < n; i++ {
			if err := encodeValue(b, rv.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		keys := rv.MapKeys()
		sortKeys(keys)

		Append(b, uint32(len(keys)))
		for _, k := range keys {
			if err := encodeValue(b, k); err != nil {
				return err
			}
			if err := encodeValue(b, rv.MapIndex(k)); err != nil {
				return err
			}
		}

	case reflect.Pointer:
		if rv.IsNil() {
			return encodeValue(b, reflect.Zero(t.Elem()))
		}
		return encodeValue(b, rv.Elem())

	case reflect.Interface:
		if rv.IsNil() {
			return errors.Wrapf(ErrUnsupportedType, "nil %v", t)
		}
		return Encode(b, rv.Elem().Interface())

	default:
		return errors.Wrapf(ErrUnsupportedType, "%v", t)
	}

	return nil
}

func isNilPointer(val interface{}) bool {
	rv := reflect.ValueOf(val)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// sortKeys orders map keys of a basic kind, other kinds keep map order
func sortKeys(keys []reflect.Value) {
	if len(keys) < 2 {
		return
	}

	var less func(i, j int) bool
	switch keys[0].Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		less = func(i, j int) bool { return keys[i].Int() < keys[j].Int() }
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		less = func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() }
	case reflect.Float32, reflect.Float64:
		less = func(i, j int) bool { return keys[i].Float() < keys[j].Float() }
	case reflect.String:
		less = func(i, j int) bool { return keys[i].String() < keys[j].String() }
	case reflect.Bool:
		less = func(i, j int) bool { return !keys[i].Bool() && keys[j].Bool() }
	default:
		return
	}

	sort.Slice(keys, less)
}

// Decode reads a value written by Encode into the value ptr points to.
//
// Reads follow the buffer's policy: running out of bytes gives zero values and is
// recorded in Err, it is not reported by Decode. Decode only fails when ptr is
// not a non nil pointer to a supported type, in which case nothing is read.
//
// Slices and maps are replaced, not appended to. When a map holds the same key
// more than once, the first value read is kept. Arrays take as many elements as
// were written, extra elements are read and dropped, missing ones are left zero.
func Decode(b *ByteBuffer, ptr interface{}) error {
	switch v := ptr.(type) {
	case Unpackable:
		if isNilPointer(v) {
			return errors.Wrapf(ErrUnsupportedType, "nil %T", ptr)
		}
		v.UnmarshalBuffer(b)
	case *bool:
		*v = Read[bool](b)
	case *int8:
		*v = Read[int8](b)
	case *int16:
		*v = Read[int16](b)
	case *int32:
		*v = Read[int32](b)
	case *int64:
		*v = Read[int64](b)
	case *uint8:
		*v = Read[uint8](b)
	case *uint16:
		*v = Read[uint16](b)
	case *uint32:
		*v = Read[uint32](b)
	case *uint64:
		*v = Read[uint64](b)
	case *float32:
		*v = Read[float32](b)
	case *float64:
		*v = Read[float64](b)
	case *string:
		*v = b.readString()
	default:
		rv := reflect.ValueOf(ptr)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return errors.Wrapf(ErrUnsupportedType, "%T is not a non nil pointer", ptr)
		}

		if err := decodeChecks.check(rv.Type().Elem(), unpackableType); err != nil {
			return err
		}

		return decodeValue(b, rv.Elem())
	}

	return nil
}

// decodeValue reads into rv, which must be settable
func decodeValue(b *ByteBuffer, rv reflect.Value) error {
	t := rv.Type()

	if reflect.PointerTo(t).Implements(unpackableType) {
		rv.Addr().Interface().(Unpackable).UnmarshalBuffer(b)
		return nil
	}

	if t.Kind() == reflect.Pointer && t.Implements(unpackableType) {
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		rv.Interface().(Unpackable).UnmarshalBuffer(b)
		return nil
	}

	switch t.Kind() {
	case reflect.Bool:
		rv.SetBool(Read[bool](b))
	case reflect.Int8:
		rv.SetInt(int64(Read[int8](b)))
	case reflect.Int16:
		rv.SetInt(int64(Read[int16](b)))
	case reflect.Int32:
		rv.SetInt(int64(Read[int32](b)))
	case reflect.Int64:
		rv.SetInt(Read[int64](b))
	case reflect.Uint8:
		rv.SetUint(uint64(Read[uint8](b)))
	case reflect.Uint16:
		rv.SetUint(uint64(Read[uint16](b)))
	case reflect.Uint32:
		rv.SetUint(uint64(Read[uint32](b)))
	case reflect.Uint64:
		rv.SetUint(Read[uint64](b))
	case reflect.Float32:
		rv.SetFloat(float64(Read[float32](b)))
	case reflect.Float64:
		rv.SetFloat(Read[float64](b))
	case reflect.String:
		rv.SetString(b.readString())

	case reflect.Slice:
		n := Read[uint32](b)
		s := reflect.MakeSlice(t, 0, int(min(n, b.BytesRemaining())))
		for i := uint32(0); i < n; i++ {
			e := reflect.New(t.Elem()).Elem()
			if err := decodeValue(b, e); err != nil {
				return err
			}
			s = reflect.Append(s, e)
		}
		rv.Set(s)

	case reflect.Array:
		n := Read[uint32](b)
		rv.Set(reflect.Zero(t))
		for i := uint32(0); i < n; i++ {
			e := reflect.New(t.Elem()).Elem()
			if int(i) < rv.Len() {
				e = rv.Index(int(i))
			}
			if err := decodeValue(b, e); err != nil {
				return err
			}
		}

	case reflect.Map:
		n := Read[uint32](b)
		m := reflect.MakeMapWithSize(t, int(min(n, b.BytesRemaining())))
		for i := uint32(0); i < n; i++ {
			k := reflect.New(t.Key()).Elem()
			if err := decodeValue(b, k); err != nil {
				return err
			}

			v := reflect.New(t.Elem()).Elem()
			if err := decodeValue(b, v); err != nil {
				return err
			}

			if !m.MapIndex(k).IsValid() {
				m.SetMapIndex(k, v)
			}
		}
		rv.Set(m)

	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(t.Elem()))
		}
		return decodeValue(b, rv.Elem())

	default:
		return errors.Wrapf(ErrUnsupportedType, "%v", t)
	}

	return nil
}
