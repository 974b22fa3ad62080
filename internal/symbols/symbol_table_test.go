package symbols

import (
	"errors"
	"math"
	"testing"

	"github.com/go-test/deep"
)

func TestDeclareAndFind(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Declare("a", IntValue(1), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := st.Declare("d", FloatValue(2.5), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := st.Find("a")
	if !ok || v != IntValue(1) {
		t.Errorf("Find(a) = %v, %v; want 1, true", v, ok)
	}
	v, ok = st.Find("d")
	if !ok || v != FloatValue(2.5) {
		t.Errorf("Find(d) = %v, %v; want 2.5, true", v, ok)
	}
	if _, ok := st.Find("missing"); ok {
		t.Error("Find(missing) should fail")
	}
}

func TestRedeclareSameKindKeepsPosition(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Declare("x", IntValue(1), 1)
	_ = st.Declare("y", IntValue(2), 2)
	if err := st.Declare("x", IntValue(9), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Symbol{
		{Name: "x", Value: IntValue(9), DeclaredAt: 1},
		{Name: "y", Value: IntValue(2), DeclaredAt: 2},
	}
	if diff := deep.Equal(st.Symbols(), want); diff != nil {
		t.Error(diff)
	}
}

func TestRedeclareOtherKindRejected(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Declare("x", IntValue(1), 1)
	err := st.Declare("x", FloatValue(2), 2)
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	v, _ := st.Find("x")
	if v != IntValue(1) {
		t.Errorf("x = %v after rejected redeclaration, want 1", v)
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}

func TestUpdate(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Declare("x", IntValue(1), 1)

	if err := st.Update("x", IntValue(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := st.Find("x"); v != IntValue(5) {
		t.Errorf("x = %v, want 5", v)
	}

	if err := st.Update("nope", IntValue(1)); !errors.Is(err, ErrUndeclared) {
		t.Errorf("expected ErrUndeclared, got %v", err)
	}
	if err := st.Update("x", FloatValue(1)); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
}

func TestByKind(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Declare("b", IntValue(2), 1)
	_ = st.Declare("f", FloatValue(0.5), 2)
	_ = st.Declare("a", IntValue(1), 3)

	ints := st.ByKind(Integer)
	want := []Symbol{
		{Name: "b", Value: IntValue(2), DeclaredAt: 1},
		{Name: "a", Value: IntValue(1), DeclaredAt: 3},
	}
	if diff := deep.Equal(ints, want); diff != nil {
		t.Error(diff)
	}
	if floats := st.ByKind(Float); len(floats) != 1 || floats[0].Name != "f" {
		t.Errorf("ByKind(Float) = %v", floats)
	}
}

func TestSymbolsReturnsCopies(t *testing.T) {
	st := NewSymbolTable()
	_ = st.Declare("x", IntValue(1), 1)
	syms := st.Symbols()
	syms[0].Value = IntValue(100)
	if v, _ := st.Find("x"); v != IntValue(1) {
		t.Errorf("mutating a returned symbol changed the table: x = %v", v)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		kind    Kind
		text    string
		want    Value
		wantErr bool
	}{
		{Integer, "5", IntValue(5), false},
		{Integer, "-12", IntValue(-12), false},
		{Integer, "+7", IntValue(7), false},
		{Integer, "007", IntValue(7), false},
		{Integer, "1.5", Value{}, true},
		{Integer, "5.", Value{}, true},
		{Integer, "99999999999999999999", Value{}, true},
		{Float, "5", FloatValue(5), false},
		{Float, "-2.25", FloatValue(-2.25), false},
		{Float, "5.", FloatValue(5), false},
		{Float, "--1", Value{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"_"+tt.text, func(t *testing.T) {
			got, err := ParseLiteral(tt.kind, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLiteral(%s, %q) error = %v, wantErr %v", tt.kind, tt.text, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidLiteral) {
					t.Errorf("expected ErrInvalidLiteral, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLiteral(%s, %q) = %v, want %v", tt.kind, tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{2.5, "2.5"},
		{-3, "-3.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{1.5e10, "1.5E10"},
		{-2.5e-5, "-2.5E-5"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatFloat(tt.in); got != tt.want {
				t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	if got := IntValue(-4).String(); got != "-4" {
		t.Errorf("IntValue(-4).String() = %q", got)
	}
	if got := FloatValue(2).String(); got != "2.0" {
		t.Errorf("FloatValue(2).String() = %q", got)
	}
	if got := Zero(Float).String(); got != "0.0" {
		t.Errorf("Zero(Float).String() = %q", got)
	}
}
