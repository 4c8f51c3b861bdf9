package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in      interface{}
		want    int
		wantErr bool
	}{
		{in: float64(42), want: 42},
		{in: "7", want: 7},
		{in: " 12 ", want: 12},
		{in: "010", want: 10},
		{in: "0x10", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := toInt(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.in)
			continue
		}
		assert.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
