// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lock   = []byte{0x02, 0x06, 0x92, 0x00, 0xA5, 0xA5, 0x1E, 0x6A}
	unlock = []byte{0x02, 0x06, 0x92, 0x00, 0x5A, 0x5A, 0x1F, 0xDA}
)

func TestVerify(t *testing.T) {
	require.NoError(t, Verify("LOCK", lock))
	require.NoError(t, Verify("UNLOCK", unlock))
	assert.True(t, Valid(lock))
}

func TestVerify_Mismatch(t *testing.T) {
	bad := append([]byte(nil), lock...)
	bad[4] = 0x5A

	err := Verify("LOCK", bad)
	require.Error(t, err)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "LOCK", mismatch.Name)
	assert.Equal(t, uint16(0x6A1E), mismatch.Actual)
	assert.NotEqual(t, mismatch.Expected, mismatch.Actual)
	assert.Contains(t, err.Error(), "LOCK")
}

func TestVerify_ShortFrame(t *testing.T) {
	err := Verify("tiny", []byte{0x02, 0x06, 0x92})
	assert.ErrorIs(t, err, ErrShortFrame)
	assert.False(t, Valid(nil))
}

func TestVerifyAll(t *testing.T) {
	bad := append([]byte(nil), unlock...)
	bad[len(bad)-1] = 0x00

	err := VerifyAll(
		Target{Name: "LOCK", Frame: lock},
		Target{Name: "BROKEN", Frame: bad},
		Target{Name: "TINY", Frame: []byte{0x01}},
	)
	require.Error(t, err)

	failures := Failures(err)
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0].Error(), "BROKEN")
	assert.ErrorIs(t, failures[1], ErrShortFrame)

	assert.NoError(t, VerifyAll(Target{Name: "LOCK", Frame: lock}))
	assert.NoError(t, VerifyAll())
}
