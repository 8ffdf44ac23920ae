// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/toondex/pkg/pointer"
)

func TestAssign(t *testing.T) {
	value := 3

	assert.False(t, pointer.Assign(&value, nil))
	assert.Equal(t, 3, value)

	assert.True(t, pointer.Assign(&value, pointer.To(0)))
	assert.Equal(t, 0, value)
}
