// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookmanager/pkg/pointer"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, "fallback", pointer.Fallback(nil, "fallback"))
	assert.Equal(t, "", pointer.Fallback(pointer.To(""), "fallback"))
	assert.Equal(t, "value", pointer.Fallback(pointer.To("value"), "fallback"))
}

func TestVal(t *testing.T) {
	assert.Equal(t, 0, pointer.Val[int](nil))
	assert.Equal(t, 4, pointer.Val(pointer.To(4)))
}
