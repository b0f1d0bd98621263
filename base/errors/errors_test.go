// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := fmt.Errorf("wrapped: %w", errTest)
	assert.Equal(t, err, Log(err))
	assert.True(t, Is(Log(err), errTest))
}

func TestCallerInfo(t *testing.T) {
	assert.Contains(t, callerInfoHelper(), "TestCallerInfo")
}

func callerInfoHelper() string {
	return CallerInfo()
}
