package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renamer-service/internal/rename/service"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Promo", "promo"},
		{"separators", "Brand_BEFR-Display.300x250", "brand befr display 300x250"},
		{"whitespace runs", "  a  _  b  ", "a b"},
		{"mixed case", "IRCHAMPAGNEGLASS", "irchampagneglass"},
		{"trailing separator", "Eng_NCL_728x90_", "eng ncl 728x90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "x", "Promo_300x600_BEFR", "a-b_c.d e", "  spaced   out__name  ",
		"Visual_1 (vertaling NL)",
	}
	for _, in := range inputs {
		once := service.Normalize(in)
		assert.Equal(t, once, service.Normalize(once), "input %q", in)
	}
}
