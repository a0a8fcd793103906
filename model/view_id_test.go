package model

import "testing"

func TestIsKnownViewID(t *testing.T) {
	tests := []struct {
		id   ViewID
		want bool
	}{
		{ListViewID, true},
		{HelpViewID, true},
		{"", false},
		{"board", false},
		{"LIST", false},
	}

	for _, tt := range tests {
		if got := IsKnownViewID(tt.id); got != tt.want {
			t.Errorf("IsKnownViewID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
