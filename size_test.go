package glint

import (
	"reflect"
	"testing"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		token string
		want  Size
	}{
		{"12", Cells(12)},
		{"0", Cells(0)},
		{"30%", Percent(30)},
		{"100%", Percent(100)},
		{"2fr", Fr(2)},
		{"1fr", Fr(1)},
		{"*", Fr(1)},
	}
	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, err := ParseSize(c.token)
			if err != nil {
				t.Fatalf("ParseSize(%q) error: %v", c.token, err)
			}
			if got != c.want {
				t.Errorf("ParseSize(%q) = %+v, want %+v", c.token, got, c.want)
			}
		})
	}

	bad := []string{"", "-3", "abc", "12px", "%", "fr", "0fr", "-1fr"}
	for _, token := range bad {
		t.Run("reject "+token, func(t *testing.T) {
			if _, err := ParseSize(token); err == nil {
				t.Errorf("ParseSize(%q) accepted, want error", token)
			}
		})
	}
}

func TestResolveSizes(t *testing.T) {
	cases := []struct {
		name  string
		sizes []Size
		span  int
		want  []int
	}{
		{
			name:  "fixed and two fractions",
			sizes: []Size{Cells(10), Fr(1), Fr(1)},
			span:  110,
			want:  []int{10, 50, 50},
		},
		{
			name:  "percent floors against original span",
			sizes: []Size{Percent(30), Percent(70)},
			span:  101,
			want:  []int{30, 70},
		},
		{
			name:  "weighted fractions",
			sizes: []Size{Fr(1), Fr(2), Fr(1)},
			span:  40,
			want:  []int{10, 20, 10},
		},
		{
			name:  "fraction remainder truncates",
			sizes: []Size{Fr(1), Fr(1), Fr(1)},
			span:  10,
			want:  []int{3, 3, 3},
		},
		{
			name:  "fixed exceeds span leaves zero for fractions",
			sizes: []Size{Cells(30), Fr(1)},
			span:  20,
			want:  []int{30, 0},
		},
		{
			name:  "percent ignores fixed consumption",
			sizes: []Size{Cells(10), Percent(50), Fr(1)},
			span:  100,
			want:  []int{10, 50, 40},
		},
		{
			name:  "percents may oversubscribe",
			sizes: []Size{Percent(80), Percent(80)},
			span:  100,
			want:  []int{80, 80},
		},
		{
			name:  "no fractions leaves remainder unassigned",
			sizes: []Size{Cells(5), Cells(5)},
			span:  100,
			want:  []int{5, 5},
		},
		{
			name:  "zero span",
			sizes: []Size{Fr(1), Cells(3)},
			span:  0,
			want:  []int{0, 3},
		},
		{
			name:  "empty",
			sizes: nil,
			span:  50,
			want:  []int{},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveSizes(c.sizes, c.span)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("ResolveSizes(%v, %d) = %v, want %v", c.sizes, c.span, got, c.want)
			}
		})
	}
}

// Fixed results never change when the span does; only percent and
// fraction entries track it.
func TestResolveSizesFixedStable(t *testing.T) {
	sizes := []Size{Cells(7), Percent(25), Fr(1)}
	for _, span := range []int{0, 10, 40, 99, 200} {
		got := ResolveSizes(sizes, span)
		if got[0] != 7 {
			t.Errorf("span %d: fixed track = %d, want 7", span, got[0])
		}
	}
}

// Resolving an all-fixed result a second time must reproduce it: layout
// re-resolution against the allocated span is idempotent for fixed-only
// specs.
func TestResolveSizesIdempotentWhenExact(t *testing.T) {
	sizes := []Size{Cells(10), Fr(1), Fr(1)}
	span := 110
	first := ResolveSizes(sizes, span)

	asFixed := make([]Size, len(first))
	for i, n := range first {
		asFixed[i] = Cells(n)
	}
	second := ResolveSizes(asFixed, span)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-resolving allocated sizes changed them: %v then %v", first, second)
	}
}

func TestParseSizes(t *testing.T) {
	got, err := ParseSizes("10", "30%", "2fr", "*")
	if err != nil {
		t.Fatalf("ParseSizes error: %v", err)
	}
	want := []Size{Cells(10), Percent(30), Fr(2), Fr(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSizes = %v, want %v", got, want)
	}

	if _, err := ParseSizes("10", "bogus"); err == nil {
		t.Error("ParseSizes accepted a bad token")
	}
}
