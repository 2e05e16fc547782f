// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, name string) *Configuration {
	t.Helper()
	f, err := Lookup(name)
	require.NoError(t, err)
	c, err := DecodeConfiguration(f, binary.LittleEndian)
	require.NoError(t, err)
	return c
}

func TestRegisterLayout(t *testing.T) {
	assert.Equal(t, 48, ConfigurationRegisters)
	assert.Equal(t, "statusBreaker", RegisterLayout[0])
	assert.Equal(t, "outputsConfiguration", RegisterLayout[ConfigurationRegisters-1])

	c := NewConfiguration(2, binary.LittleEndian)
	assert.Equal(t, uint16(0x9100), c.Registers[0].Address)
	assert.Equal(t, uint16(0x912F), c.Registers[47].Address)
}

func TestDecodeConfiguration(t *testing.T) {
	tests := []struct {
		variant        string
		product        string
		productTypeID  uint16
		neutralization uint16
		outputs        uint16
	}{
		{"MOD", "MOD", 0, 0, 0x0000},
		{"MOD_SIGN_NC", "MOD", 0, 0, 0x4000},
		{"MOD_LV", "MOD_LV", 1, 0, 0x0000},
		{"MOD_LV_HAGER", "MOD_LV", 1, 0, 0xC000},
		{"ARI", "ARI", 2, 12, 0x0000},
		{"ARI_LV", "ARI_LV", 3, 12, 0x0000},
		{"ARI_30", "ARI_30", 4, 45, 0x0000},
		{"ARH_2P_30MA", "ARH_2P_30mA", 5, 45, 0x0000},
		{"ARH_2P_300MA", "ARH_2P_300mA", 6, 45, 0x0000},
		{"ARH_4P_30MA", "ARH_4P_30mA", 7, 45, 0x0000},
		{"ARH_4P_300MA", "ARH_4P_300mA", 8, 45, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			c := decode(t, tt.variant)
			assert.Equal(t, byte(0x02), c.SlaveID)
			assert.Equal(t, tt.product, c.ProductName())

			v, ok := c.Value("productTypeID")
			require.True(t, ok)
			assert.Equal(t, tt.productTypeID, v)

			v, _ = c.Value("neutralizationTime")
			assert.Equal(t, tt.neutralization, v)

			v, _ = c.Value("outputsConfiguration")
			assert.Equal(t, tt.outputs, v)

			v, _ = c.Value("assessmentResult")
			assert.Equal(t, uint16(0xA5A5), v)
			v, _ = c.Value("modStatus")
			assert.Equal(t, uint16(1), v)
		})
	}
}

func TestDecodeConfiguration_ARIReclosing(t *testing.T) {
	c := decode(t, "ARI_30")
	v, _ := c.Value("reclosingAttempts")
	assert.Equal(t, uint16(3), v)
	v, _ = c.Value("waitingTime")
	assert.Equal(t, uint16(30), v)
}

func TestDecodeConfiguration_BigEndian(t *testing.T) {
	f, err := Lookup("ARI")
	require.NoError(t, err)
	c, err := DecodeConfiguration(f, binary.BigEndian)
	require.NoError(t, err)

	v, _ := c.Value("neutralizationTime")
	assert.Equal(t, uint16(0x0C00), v)
	assert.Equal(t, "ARI", c.ProductName())
}

func TestDecodeConfiguration_NilOrder(t *testing.T) {
	f, err := Lookup("ARI_30")
	require.NoError(t, err)
	c, err := DecodeConfiguration(f, nil)
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian, c.Order())

	v, ok := c.Value("neutralizationTime")
	require.True(t, ok)
	assert.Equal(t, uint16(45), v)

	out, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, f.Hex(), out.Hex())
}

func TestDecodeConfiguration_Rejects(t *testing.T) {
	lock, err := Lookup("LOCK")
	require.NoError(t, err)
	_, err = DecodeConfiguration(lock, binary.LittleEndian)
	assert.ErrorIs(t, err, ErrNotConfiguration)

	motor, err := Lookup("MOTOR_DRIVER_PARAMETERS")
	require.NoError(t, err)
	_, err = DecodeConfiguration(motor, binary.LittleEndian)
	assert.ErrorIs(t, err, ErrNotConfiguration)

	mod, err := Lookup("MOD")
	require.NoError(t, err)
	mod[10] ^= 0x01
	_, err = DecodeConfiguration(mod, binary.LittleEndian)
	assert.Error(t, err)
}

func TestConfigurationRoundTrip(t *testing.T) {
	for _, e := range All() {
		if e.Kind != KindConfiguration {
			continue
		}
		t.Run(e.Name, func(t *testing.T) {
			c, err := DecodeConfiguration(e.Frame, binary.LittleEndian)
			require.NoError(t, err)
			out, err := c.Encode()
			require.NoError(t, err)
			assert.Equal(t, e.Frame.Hex(), out.Hex())
		})
	}
}

func TestConfigurationSet(t *testing.T) {
	c := decode(t, "ARI")
	require.NoError(t, c.Set("neutralizationtime", 45))
	require.NoError(t, c.SetProductName("ARI_30"))
	require.NoError(t, c.Set("productTypeID", 4))
	require.NoError(t, c.Set("waitingTime", 30))

	out, err := c.Encode()
	require.NoError(t, err)

	ari30, err := Lookup("ARI_30")
	require.NoError(t, err)
	assert.Equal(t, ari30.Hex(), out.Hex())

	assert.Error(t, c.Set("noSuchRegister", 1))
	assert.Error(t, c.SetProductName("A_NAME_LONGER_THAN_16"))
}
