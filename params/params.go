package params

import (
	"sort"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/kbukum/mws/errors"
)

// TimeFormat is the ISO-8601 profile used for every date-time parameter:
// UTC, millisecond precision, literal Z.
const TimeFormat = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Pair is one canonical key/value parameter.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of canonical parameters.
type Pairs []Pair

// Add appends a pair.
func (p *Pairs) Add(key, value string) {
	*p = append(*p, Pair{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// Sorted returns a copy ordered by key using byte-wise comparison.
func (p Pairs) Sorted() Pairs {
	out := make(Pairs, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// EncodeParams makes a pre-built pair list usable wherever a Value is
// expected. At the root the pairs pass through unchanged; nested under a
// field each key is prefixed with path.
func (p Pairs) EncodeParams(path string, pairs *Pairs) error {
	for _, pair := range p {
		pairs.Add(Join(path, pair.Key), pair.Value)
	}
	return nil
}

// Raw builds a pair list from alternating keys and values, for single
// parameter calls such as NextToken or ReportId.
func Raw(kv ...string) Pairs {
	out := make(Pairs, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out.Add(kv[i], kv[i+1])
	}
	return out
}

// Value is implemented by every type that can describe its own parameter
// mapping. path is the fully qualified key of the value.
type Value interface {
	EncodeParams(path string, pairs *Pairs) error
}

// Encode flattens v at the root and rejects duplicate keys.
func Encode(v Value) (Pairs, error) {
	var pairs Pairs
	if v == nil {
		return pairs, nil
	}
	if err := v.EncodeParams("", &pairs); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(pairs))
	for _, pair := range pairs {
		if _, dup := seen[pair.Key]; dup {
			return nil, errors.Encoding(pair.Key, "key emitted more than once")
		}
		seen[pair.Key] = struct{}{}
	}
	return pairs, nil
}

// Join appends name to path using the dotted key convention.
func Join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func addScalar(path, value string, pairs *Pairs) error {
	if path == "" {
		return errors.Encoding(value, "scalar value has no key")
	}
	if !utf8.ValidString(value) {
		return errors.Encoding(path, "value is not valid UTF-8")
	}
	pairs.Add(path, value)
	return nil
}

// --- scalars ---

// String encodes a text value.
type String string

// EncodeParams implements Value.
func (s String) EncodeParams(path string, pairs *Pairs) error {
	return addScalar(path, string(s), pairs)
}

// Decimal encodes an amount exactly as given. The service treats amount
// strings as opaque, so no reformatting happens.
type Decimal string

// EncodeParams implements Value.
func (d Decimal) EncodeParams(path string, pairs *Pairs) error {
	return addScalar(path, string(d), pairs)
}

// Bool encodes as "true" or "false".
type Bool bool

// EncodeParams implements Value.
func (b Bool) EncodeParams(path string, pairs *Pairs) error {
	return addScalar(path, strconv.FormatBool(bool(b)), pairs)
}

// Int encodes a base-10 integer.
type Int int64

// EncodeParams implements Value.
func (i Int) EncodeParams(path string, pairs *Pairs) error {
	return addScalar(path, strconv.FormatInt(int64(i), 10), pairs)
}

// Time encodes a date-time in TimeFormat.
type Time time.Time

// EncodeParams implements Value.
func (t Time) EncodeParams(path string, pairs *Pairs) error {
	if time.Time(t).IsZero() {
		return errors.Encoding(path, "zero date-time")
	}
	return addScalar(path, FormatTime(time.Time(t)), pairs)
}

// --- optionals ---

type absent struct{}

func (absent) EncodeParams(string, *Pairs) error { return nil }

// Absent contributes no pair.
var Absent Value = absent{}

// Opt wraps an optional field: nil contributes nothing, otherwise wrap(*v)
// is encoded.
func Opt[T any](v *T, wrap func(T) Value) Value {
	if v == nil {
		return Absent
	}
	return wrap(*v)
}

// OptString encodes an optional string.
func OptString(v *string) Value {
	return Opt(v, func(s string) Value { return String(s) })
}

// OptBool encodes an optional boolean.
func OptBool(v *bool) Value {
	return Opt(v, func(b bool) Value { return Bool(b) })
}

// OptInt encodes an optional integer.
func OptInt(v *int) Value {
	return Opt(v, func(i int) Value { return Int(i) })
}

// OptTime encodes an optional date-time.
func OptTime(v *time.Time) Value {
	return Opt(v, func(t time.Time) Value { return Time(t) })
}

// --- lists ---

// List encodes Items as Path.ItemTag.1 .. Path.ItemTag.n, order preserved.
// An empty list contributes nothing.
type List struct {
	ItemTag string
	Items   []Value
}

// EncodeParams implements Value.
func (l List) EncodeParams(path string, pairs *Pairs) error {
	if len(l.Items) == 0 {
		return nil
	}
	if l.ItemTag == "" {
		return errors.Encoding(path, "list has no item tag")
	}
	prefix := Join(path, l.ItemTag)
	for i, item := range l.Items {
		if err := item.EncodeParams(prefix+"."+strconv.Itoa(i+1), pairs); err != nil {
			return err
		}
	}
	return nil
}

// ListOf builds a List by wrapping each element.
func ListOf[T any](itemTag string, items []T, wrap func(T) Value) List {
	values := make([]Value, len(items))
	for i, item := range items {
		values[i] = wrap(item)
	}
	return List{ItemTag: itemTag, Items: values}
}

// Strings builds a list of text values.
func Strings(itemTag string, items []string) List {
	return ListOf(itemTag, items, func(s string) Value { return String(s) })
}

// --- records ---

// NamedValue is one declared field of a record.
type NamedValue struct {
	Name  string
	Value Value
}

// Field declares a record field.
func Field(name string, v Value) NamedValue {
	return NamedValue{Name: name, Value: v}
}

// Object encodes a record by flattening each field under Path.Name.
type Object []NamedValue

// EncodeParams implements Value.
func (o Object) EncodeParams(path string, pairs *Pairs) error {
	for _, f := range o {
		if f.Value == nil {
			continue
		}
		if err := f.Value.EncodeParams(Join(path, f.Name), pairs); err != nil {
			return err
		}
	}
	return nil
}
