// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/fault"
)

const minConnectionCount = 1

// Listener - a set of network servers started together
type Listener interface {
	Serve() error
	Stop()
}

// determine the network for each listen address
//
// "*:PORT" is rewritten to "[::]:PORT" on the assumption that this
// will listen on both tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	rewritten := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.InvalidIPAddress
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen address: %q  error: %s", listen, fault.InvalidIPAddress)
			return nil, nil, fault.InvalidIPAddress
		}
		rewritten[i] = net.JoinHostPort(host, port)
	}

	return networks, rewritten, nil
}
