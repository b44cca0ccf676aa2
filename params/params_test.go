package params

import (
	"reflect"
	"testing"
	"time"

	"github.com/kbukum/mws/errors"
)

type address struct {
	City    string
	Country *string
}

func (a address) EncodeParams(path string, pairs *Pairs) error {
	return Object{
		Field("City", String(a.City)),
		Field("Country", OptString(a.Country)),
	}.EncodeParams(path, pairs)
}

func strPtr(s string) *string { return &s }

func TestEncode_Scalars(t *testing.T) {
	ts := time.Date(2018, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("PST", -8*3600))
	pairs, err := Encode(Object{
		Field("Name", String("shoe")),
		Field("Acknowledged", Bool(false)),
		Field("MaxCount", Int(100)),
		Field("AvailableFromDate", Time(ts)),
		Field("Amount", Decimal("29.990")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Pairs{
		{"Name", "shoe"},
		{"Acknowledged", "false"},
		{"MaxCount", "100"},
		{"AvailableFromDate", "2018-03-04T13:06:07.890Z"},
		{"Amount", "29.990"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestEncode_OptionalsAbsent(t *testing.T) {
	pairs, err := Encode(Object{
		Field("MaxCount", OptInt(nil)),
		Field("Acknowledged", OptBool(nil)),
		Field("StartDate", OptTime(nil)),
		Field("ReportOptions", OptString(nil)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no pairs, got %v", pairs)
	}
}

func TestEncode_OptionalsPresent(t *testing.T) {
	n, b := 5, true
	pairs, err := Encode(Object{
		Field("MaxCount", OptInt(&n)),
		Field("Acknowledged", OptBool(&b)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := pairs.Get("MaxCount"); v != "5" {
		t.Errorf("MaxCount = %q", v)
	}
	if v, _ := pairs.Get("Acknowledged"); v != "true" {
		t.Errorf("Acknowledged = %q", v)
	}
}

func TestEncode_List(t *testing.T) {
	pairs, err := Encode(Object{
		Field("IdList", Strings("Id", []string{"x", "y"})),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pairs{{"IdList.Id.1", "x"}, {"IdList.Id.2", "y"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestEncode_EmptyListOmitted(t *testing.T) {
	for _, items := range [][]string{nil, {}} {
		pairs, err := Encode(Object{Field("IdList", Strings("Id", items))})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pairs) != 0 {
			t.Errorf("expected no pairs for %v, got %v", items, pairs)
		}
	}
}

func TestEncode_NestedObjects(t *testing.T) {
	pairs, err := Encode(Object{
		Field("Destination", address{City: "Seattle", Country: strPtr("US")}),
		Field("Stops", ListOf("member", []address{{City: "A"}, {City: "B"}}, func(a address) Value { return a })),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pairs{
		{"Destination.City", "Seattle"},
		{"Destination.Country", "US"},
		{"Stops.member.1.City", "A"},
		{"Stops.member.2.City", "B"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestEncode_RawPassthrough(t *testing.T) {
	pairs, err := Encode(Raw("NextToken", "abc+/=="))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pairs{{"NextToken", "abc+/=="}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestEncode_RawNested(t *testing.T) {
	pairs, err := Encode(Object{
		Field("ReportId", String("6")),
		Field("Filter", Raw("Type", "_GET_ORDERS_DATA_", "Since", "2017")),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pairs{
		{"ReportId", "6"},
		{"Filter.Type", "_GET_ORDERS_DATA_"},
		{"Filter.Since", "2017"},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("got %v, want %v", pairs, want)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	v := Object{
		Field("ReportType", String("X")),
		Field("MarketplaceIdList", Strings("Id", []string{"A", "B"})),
	}
	first, err := Encode(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := Encode(v)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("encoding is not deterministic: %v vs %v", first, second)
	}
}

func TestPairs_Sorted(t *testing.T) {
	pairs := Pairs{{"B", "2"}, {"A", "1"}, {"AA", "3"}, {"a", "4"}}
	got := pairs.Sorted()
	var keys []string
	for _, p := range got {
		keys = append(keys, p.Key)
	}
	want := []string{"A", "AA", "B", "a"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("got %v, want %v", keys, want)
	}
	if pairs[0].Key != "B" {
		t.Error("Sorted must not reorder the receiver")
	}
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"duplicate key", Object{Field("A", String("1")), Field("A", String("2"))}},
		{"zero time", Object{Field("StartDate", Time(time.Time{}))}},
		{"invalid utf8", Object{Field("Name", String("\xff"))}},
		{"scalar at root", String("orphan")},
		{"list without item tag", Object{Field("L", List{Items: []Value{String("x")}})}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.v)
			if !errors.IsEncoding(err) {
				t.Errorf("expected encoding error, got %v", err)
			}
		})
	}
}
