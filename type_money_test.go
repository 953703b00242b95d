package partnership

import (
	"encoding/json"
	"testing"
)

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"1.004", "1.00"},
		{"-101.5", "-101.50"},
		{"2.675", "2.68"},
		{"-0.0049", "0.00"},
	}
	for _, tt := range tests {
		got := USD(tt.value).Round()
		if !got.Equal(USD(tt.want)) {
			t.Errorf("USD(%s).Round() = %v, want %s", tt.value, got.Decimal(), tt.want)
		}
		if got.String() != tt.want {
			t.Errorf("USD(%s).Round().String() = %q, want %q", tt.value, got.String(), tt.want)
		}
	}
}

func TestMoney_ExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3, unlike float64.
	sum := USD("0.1").Add(USD("0.2"))
	if !sum.Equal(USD("0.3")) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", sum.Decimal())
	}
	if got := USD("0.01").Half(); !got.Equal(USD("0.005")) {
		t.Errorf("Half(0.01) = %v, want 0.005", got.Decimal())
	}
	if got := USD("1.255").Mul(12); !got.Equal(USD("15.06")) {
		t.Errorf("1.255 * 12 = %v, want 15.06", got.Decimal())
	}
}

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"1234.5", "", "$1,234.50"},
		{"-401.5", "USD", "-$401.50"},
		{"0.005", "USD", "$0.01"},
	}
	for _, tt := range tests {
		if got := USD(tt.value).Format(tt.currency); got != tt.want {
			t.Errorf("USD(%s).Format(%q) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	for value, want := range map[string]string{
		"2":      "+2.00",
		"-1.5":   "-1.50",
		"0":      "0.00",
		"0.001":  "0.00",
		"-0.004": "0.00",
	} {
		if got := USD(value).SignedString(); got != want {
			t.Errorf("USD(%s).SignedString() = %q, want %q", value, got, want)
		}
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(USD("12.345"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "12.35" {
		t.Errorf("json.Marshal(12.345) = %s, want 12.35", got)
	}
	var m Money
	if err := json.Unmarshal([]byte("7.5"), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(USD("7.50")) {
		t.Errorf("json.Unmarshal(7.5) = %v, want 7.50", m.Decimal())
	}
}
