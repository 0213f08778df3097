package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/mtrand/utils"
)

func TestFind(t *testing.T) {
	data := []string{"one", "two", "three"}
	dataMap := map[int]string{1: "one", 2: "two", 3: "three"}

	ok, failed := utils.Find(dataMap, data, nil)
	assert.Equal(t, data, ok)
	assert.Nil(t, failed)

	ok, failed = utils.Find(dataMap, data, []int{3, 4, 1})
	assert.Equal(t, []string{"three", "one"}, ok)
	assert.Equal(t, []int{4}, failed)
}
