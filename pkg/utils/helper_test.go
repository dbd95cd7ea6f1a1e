package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 2.5, ParseFloat("2.5"))
	assert.Zero(t, ParseFloat(""))
	assert.Zero(t, ParseFloat("abc"))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("yes"))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitCSV("a, b ,c"))
	assert.Equal(t, []string{"a"}, SplitCSV("a,,"))
	assert.Nil(t, SplitCSV(""))
}
