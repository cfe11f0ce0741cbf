// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"
)

// test Marshal and Unmarshal
func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	if nil != err {
		t.Errorf("makeSalt fail: %s", err)
	}

	marshalSalt, err := salt.MarshalText()
	if nil != err {
		t.Errorf("marshal fail: %s", err)
	}

	salt2 := new(Salt)
	err = salt2.UnmarshalText(marshalSalt)
	if nil != err {
		t.Errorf("unmarshal fail: %s", err)
	}

	if salt.String() != salt2.String() {
		t.Errorf("unmarshal failed, %s != %s\n", salt.String(), salt2.String())
	}

	err = salt2.UnmarshalText([]byte("0102"))
	if nil == err {
		t.Errorf("short salt was accepted")
	}
}
