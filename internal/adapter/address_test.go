package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "country and postal code with mark",
			in:   "日本、〒100-0001 東京都千代田区千代田1-1",
			want: "東京都千代田区千代田1-1",
		},
		{
			name: "postal code without mark",
			in:   "日本、100-0001 東京都千代田区千代田1-1",
			want: "東京都千代田区千代田1-1",
		},
		{
			name: "postal code without hyphen",
			in:   "〒1000001 東京都千代田区千代田1-1",
			want: "東京都千代田区千代田1-1",
		},
		{
			name: "no country token",
			in:   "東京都千代田区千代田1-1",
			want: "東京都千代田区千代田1-1",
		},
		{
			name: "postal-code-like token mid-address is kept",
			in:   "東京都港区芝公園4-2-8",
			want: "東京都港区芝公園4-2-8",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.in))
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "35.6586, 139.7454", FormatCoordinates(35.6586, 139.7454))
	assert.Equal(t, "0, 0", FormatCoordinates(0, 0))
	assert.Equal(t, "-33.5, 151.25", FormatCoordinates(-33.5, 151.25))
}
