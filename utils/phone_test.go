package utils

import "testing"

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"0555010203", "966555010203", "+966 55 501 0203", "05 5501 0203"}
	for _, n := range valid {
		if !ValidatePhoneNumber(n) {
			t.Errorf("%q should be accepted", n)
		}
	}

	invalid := []string{"", "12345", "0655010203", "96655501020", "05550102034", "not a phone"}
	for _, n := range invalid {
		if ValidatePhoneNumber(n) {
			t.Errorf("%q should be rejected", n)
		}
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"966555010203", "0555010203"},
		{"+966555010203", "0555010203"},
		{"0555010203", "0555010203"},
		{"05 5501 0203", "0555010203"},
		{"garbage", "garbage"}, // invalid input passes through untouched
	}

	for _, c := range cases {
		if got := NormalizePhoneNumber(c.in); got != c.want {
			t.Errorf("NormalizePhoneNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
