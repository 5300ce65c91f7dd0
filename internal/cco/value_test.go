package cco

import (
	"math/big"
	"testing"

	"github.com/zclconf/go-cty/cty"
)

func TestFromCtyNumberConversions(t *testing.T) {
	tests := []struct {
		name    string
		in      cty.Value
		want    Value
		wantErr bool
	}{
		{name: "small integer", in: cty.NumberIntVal(42), want: IntValue(42)},
		{name: "negative integer", in: cty.NumberIntVal(-7), want: IntValue(-7)},
		{name: "fractional value", in: cty.NumberFloatVal(1.5), want: FloatValue(1.5)},
		{
			name:    "whole number out of int64 range",
			in:      cty.NumberVal(new(big.Float).SetPrec(200).SetInt(new(big.Int).Lsh(big.NewInt(1), 100))),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromCty(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromCty(%v) = %v, want a ConversionError", tt.in, got)
				}
				if _, ok := err.(*ConversionError); !ok {
					t.Fatalf("FromCty(%v) error = %T, want *ConversionError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromCty(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FromCty(%v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromCtyNull(t *testing.T) {
	_, err := FromCty(cty.NullVal(cty.String))
	if _, ok := err.(*ConversionError); !ok {
		t.Fatalf("FromCty(null) error = %T, want *ConversionError", err)
	}
}
