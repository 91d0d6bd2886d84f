package cardgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonePublic(t *testing.T) {
	tests := []struct {
		zone Zone
		want bool
	}{
		{ZoneDeck(), false},
		{ZoneHand(true), true},
		{ZoneHand(false), false},
		{ZoneField(), true},
		{ZoneDust(true), true},
		{ZoneDust(false), false},
		{ZoneLimbo(true), true},
		{ZoneLimbo(false), false},
		{ZoneCasting(), true},
		{ZoneCardSelection(), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.zone.Public(), tt.zone.String())
	}
}

func TestZoneAttachmentParent(t *testing.T) {
	parent := CardID(5)
	z := ZoneAttachment(parent)

	got, ok := z.Parent()
	require.True(t, ok)
	assert.Equal(t, parent, got)

	_, ok = ZoneField().Parent()
	assert.False(t, ok)
}

func TestZoneEqual(t *testing.T) {
	eq, err := ZoneHand(true).Equal(ZoneHand(true))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = ZoneHand(true).Equal(ZoneHand(false))
	require.NoError(t, err)
	assert.False(t, eq)

	a := ZoneAttachment(CardID(1))
	b := ZoneAttachment(CardID(1))
	eq, err = a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	c := ZoneAttachment(CardPointer(OpaquePointer{Owner: Player0, Index: 9}))
	_, err = a.Equal(c)
	require.Error(t, err)
	var incomparable *ErrIncomparableZones
	assert.ErrorAs(t, err, &incomparable)
}
