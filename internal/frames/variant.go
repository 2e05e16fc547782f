// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownVariant   = errors.New("unknown variant")
	ErrUnknownKind      = errors.New("unknown frame kind")
	ErrNotConfiguration = errors.New("not a configuration frame")
)

// Kind groups frames that share one layout. All frames of a kind have the
// same length.
type Kind int

const (
	KindConfiguration Kind = iota
	KindMotorDriverParameters
	KindMotorDriverParametersLegacy
	KindLock
	KindUnlock
)

var kindNames = map[Kind]string{
	KindConfiguration:               "configuration",
	KindMotorDriverParameters:       "motor-driver-parameters",
	KindMotorDriverParametersLegacy: "motor-driver-parameters-legacy",
	KindLock:                        "lock",
	KindUnlock:                      "unlock",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Length returns the frame length every frame of the kind has.
func (k Kind) Length() int {
	switch k {
	case KindConfiguration:
		return 105
	case KindMotorDriverParameters:
		return 57
	case KindMotorDriverParametersLegacy:
		return 55
	case KindLock, KindUnlock:
		return 8
	default:
		return 0
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Entry is one row of the frame table.
type Entry struct {
	Name string
	Kind Kind
	// Retired entries are kept for reference but are no longer sent by the stand.
	Retired bool
	Frame   Frame
}

// normalizeName maps "ari_30" and " ARI_30 " to "ARI_30".
func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
