package funct

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	out, err := Map([]string{"1", "2", "3"}, strconv.Atoi)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	_, err = Map([]string{"1", "x"}, strconv.Atoi)
	assert.Error(t, err)

	empty, err := Map([]int{}, func(x int) (string, error) { return fmt.Sprint(x), nil })
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFilterIndexSome(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}
	even := func(x int) bool { return x%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter(values, even))
	assert.Equal(t, 1, Index(values, even))
	assert.Equal(t, -1, Index(values, func(x int) bool { return x > 10 }))
	assert.True(t, Some(values, even))
	assert.False(t, Some([]int{1, 3}, even))
}
