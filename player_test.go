package cardgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerOther(t *testing.T) {
	assert.Equal(t, Player1, Player0.Other())
	assert.Equal(t, Player0, Player1.Other())
}

func TestPlayerString(t *testing.T) {
	assert.NotEqual(t, Player0.String(), Player1.String())
}
