// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/host"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory and envelope statistics
type memstats struct {
	log *logger.L
}

func (s *memstats) Run(args interface{}, shutdown <-chan struct{}) {

	r := args.(*host.Runtime)

	for {
		s.report(r)

		select {
		case <-shutdown:
			s.log.Info("stopped")
			return
		case <-time.After(statsDelay):
		}
	}
}

func (s *memstats) report(r *host.Runtime) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	text, err := json.Marshal(m)
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
	} else {
		s.log.Debugf("stats: %s", text)
	}
	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	sys := m.Sys / mega
	s.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, sys)

	counts := r.Counts()
	s.log.Infof("envelopes committed: %d  failed: %d", counts.Committed, counts.Failed)
}
