package adjustment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardAccount_Apply(t *testing.T) {
	tests := []struct {
		name    string
		current int
		isWin   bool
		value   int
		want    int
	}{
		{name: "win", current: 1000, isWin: true, value: 500, want: 1500},
		{name: "lose", current: 1500, isWin: false, value: 1500, want: 0},
		{name: "lose below zero", current: 100, isWin: false, value: 300, want: -200},
		{name: "negative value win", current: 10, isWin: true, value: -4, want: 6},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StandardAccount{}.Apply(tt.current, tt.isWin, tt.value))
		})
	}
}

func TestReducedPenaltyAccount_Apply(t *testing.T) {
	tests := []struct {
		name    string
		current int
		isWin   bool
		value   int
		want    int
	}{
		{name: "win keeps full value", current: 1200, isWin: true, value: 600, want: 1800},
		{name: "lose halves penalty", current: 1200, isWin: false, value: 600, want: 900},
		{name: "odd penalty truncates", current: 100, isWin: false, value: 7, want: 97},
		{name: "negative penalty truncates toward zero", current: 100, isWin: false, value: -7, want: 103},
		{name: "penalty of one is free", current: 5, isWin: false, value: 1, want: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ReducedPenaltyAccount{}.Apply(tt.current, tt.isWin, tt.value))
		})
	}
}

func TestNew(t *testing.T) {
	p, err := New(Standard)
	require.NoError(t, err)
	assert.Equal(t, StandardAccount{}, p)

	p, err = New(ReducedPenalty)
	require.NoError(t, err)
	assert.Equal(t, ReducedPenaltyAccount{}, p)

	_, err = New("premium")
	assert.ErrorIs(t, err, ErrUnknownAdjustmentKind)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{name: "standard", want: Standard},
		{name: "Reduced-Penalty", want: ReducedPenalty},
		{name: "reduced_penalty", want: ReducedPenalty},
		{name: "specific", want: Standard},
		{name: "vip", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKind(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAdjustmentKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
