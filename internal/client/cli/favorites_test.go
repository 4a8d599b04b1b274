package cli

import "testing"

func TestParseCharacterID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := parseCharacterID(tc.arg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseCharacterID(%q): expected error", tc.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCharacterID(%q): %v", tc.arg, err)
		}
		if got != tc.want {
			t.Errorf("parseCharacterID(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}
}
