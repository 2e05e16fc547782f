// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ffutop/modframes/modbus"
	"github.com/ffutop/modframes/modbus/rtu"
)

const (
	// ConfigurationStart is the first register of the MOD configuration block.
	ConfigurationStart uint16 = 0x9100
	// ProtectionRegister takes the lock/unlock magic.
	ProtectionRegister uint16 = 0x9200
	// MotorDriverStart is the first register of the motor driver parameters.
	MotorDriverStart uint16 = 0x9000

	LockValue   uint16 = 0xA5A5
	UnlockValue uint16 = 0x5A5A
)

// RegisterLayout names the registers of a configuration frame in address
// order, starting at ConfigurationStart.
var RegisterLayout = [...]string{
	"statusBreaker",
	"tripStatus",
	"peakCurrent",
	"motorTorque",
	"timeMaxTorque",
	"peakTorqueAngle",
	"closingTime",
	"openingTime",
	"totalNumberManeuver",
	"totalClosingManeuver",
	"maneuverAttemptOngoing",
	"assessmentOngoing",
	"assessmentResult",
	"out1Status",
	"out2Status",
	"in1Status",
	"in2Status",
	"lastCommand",
	"modStatus",
	"productTypeID",
	"productType1",
	"productType2",
	"productType3",
	"productType4",
	"productType5",
	"productType6",
	"productType7",
	"productType8",
	"serialNumberMOD1",
	"serialNumberMOD2",
	"serialNumberMOD3",
	"serialNumberMOD4",
	"serialNumberMOD5",
	"fwVersionMod1",
	"fwVersionMod2",
	"assessmentTemp",
	"assessmentVoltage",
	"assessmentPhRd",
	"assessmentRd",
	"commandBreaker",
	"OldcommandBreaker",
	"leverPosition",
	"enableInput",
	"enableCommunication",
	"reclosingAttempts",
	"waitingTime",
	"neutralizationTime", // 12 s for ARI, 45 s for ARI_30 and ARH
	"outputsConfiguration",
}

// ConfigurationRegisters is the register count of a configuration frame.
const ConfigurationRegisters = len(RegisterLayout)

var layoutIndex = func() map[string]int {
	m := make(map[string]int, len(RegisterLayout))
	for i, name := range RegisterLayout {
		m[strings.ToLower(name)] = i
	}
	return m
}()

// Register is one decoded register slot.
type Register struct {
	Name    string
	Address uint16
	Value   uint16
}

// Configuration is a decoded configuration frame.
type Configuration struct {
	SlaveID   byte
	Registers [ConfigurationRegisters]Register

	order binary.ByteOrder
}

// NewConfiguration returns a zeroed configuration for slaveID whose values
// are written in the given word order; a nil order means little endian.
func NewConfiguration(slaveID byte, order binary.ByteOrder) *Configuration {
	if order == nil {
		order = binary.LittleEndian
	}
	c := &Configuration{SlaveID: slaveID, order: order}
	for i, name := range RegisterLayout {
		c.Registers[i] = Register{Name: name, Address: ConfigurationStart + uint16(i)}
	}
	return c
}

// DecodeConfiguration checks frame and decodes its register values with order.
// The production frames store each value low byte first, so order is
// normally binary.LittleEndian, which is also what a nil order means.
func DecodeConfiguration(frame Frame, order binary.ByteOrder) (*Configuration, error) {
	adu, err := rtu.Decode(frame)
	if err != nil {
		return nil, err
	}
	if adu.Pdu.FunctionCode != modbus.FuncCodeWriteMultipleRegisters {
		return nil, fmt.Errorf("%w: function code 0x%02X", ErrNotConfiguration, adu.Pdu.FunctionCode)
	}

	data := adu.Pdu.Data
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: %d data bytes", ErrNotConfiguration, len(data))
	}
	start := binary.BigEndian.Uint16(data[0:2])
	count := int(binary.BigEndian.Uint16(data[2:4]))
	byteCount := int(data[4])
	values := data[5:]

	if start != ConfigurationStart {
		return nil, fmt.Errorf("%w: starts at 0x%04X", ErrNotConfiguration, start)
	}
	if count != ConfigurationRegisters || byteCount != 2*count || len(values) != byteCount {
		return nil, fmt.Errorf("%w: %d registers, byte count %d, %d value bytes",
			ErrNotConfiguration, count, byteCount, len(values))
	}

	c := NewConfiguration(adu.SlaveID, order)
	for i := range c.Registers {
		c.Registers[i].Value = c.order.Uint16(values[2*i:])
	}
	return c, nil
}

// Value returns the value of the named register. Names are case-insensitive.
func (c *Configuration) Value(name string) (uint16, bool) {
	i, ok := layoutIndex[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return c.Registers[i].Value, true
}

// Set changes the value of the named register.
func (c *Configuration) Set(name string, value uint16) error {
	i, ok := layoutIndex[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown register %q", name)
	}
	c.Registers[i].Value = value
	return nil
}

// Values returns the register values in address order.
func (c *Configuration) Values() []uint16 {
	out := make([]uint16, len(c.Registers))
	for i, r := range c.Registers {
		out[i] = r.Value
	}
	return out
}

// Order returns the word order the configuration was decoded with.
func (c *Configuration) Order() binary.ByteOrder {
	return c.order
}

// ProductName returns the ASCII name held in productType1..8. Each register
// carries two characters with the bytes swapped on the wire; 0xFF pads.
func (c *Configuration) ProductName() string {
	first := layoutIndex["producttype1"]
	var sb strings.Builder
	var raw [2]byte
	for i := first; i < first+8; i++ {
		c.order.PutUint16(raw[:], c.Registers[i].Value)
		for _, ch := range [2]byte{raw[1], raw[0]} {
			if ch == 0xFF || ch == 0x00 {
				return sb.String()
			}
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}

// SetProductName writes name into productType1..8, padding with 0xFF.
func (c *Configuration) SetProductName(name string) error {
	if len(name) > 16 {
		return fmt.Errorf("product name %q longer than 16 characters", name)
	}
	first := layoutIndex["producttype1"]
	padded := []byte(name)
	for len(padded) < 16 {
		padded = append(padded, 0xFF)
	}
	for i := 0; i < 8; i++ {
		raw := [2]byte{padded[2*i+1], padded[2*i]}
		c.Registers[first+i].Value = c.order.Uint16(raw[:])
	}
	return nil
}

// Encode rebuilds the configuration frame.
func (c *Configuration) Encode() (Frame, error) {
	return NewBuilder(c.SlaveID, c.order).WriteMultiple(ConfigurationStart, c.Values())
}
