// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"math/rand"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/fixtures"
	"github.com/bitmark-inc/chunkwriter/rpc/certificate"
)

func randomPort() int {
	return rand.Intn(30000) + 30000
}

// self signed server configuration for the loopback address
func serverTLS(t *testing.T) (*tls.Config, [32]byte) {
	cer, key, err := certgen.NewTLSCertPair("chunkwriterd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("certificate generation error: %s", err)
	}

	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", string(cer), string(key))
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return tlsConfig, fingerprint
}

func clientTLS() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify: true,
	}
}
