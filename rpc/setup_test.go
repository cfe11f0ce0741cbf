// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/derivation"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/fixtures"
	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/rpc"
	"github.com/bitmark-inc/chunkwriter/rpc/listeners"
	"github.com/bitmark-inc/chunkwriter/rpc/node"
	"github.com/bitmark-inc/chunkwriter/upload"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := certgen.NewTLSCertPair("chunkwriterd test", time.Now().Add(time.Hour), false, nil)
	assert.Nil(t, err, "certificate generation")

	port := rand.Intn(30000) + 30000
	rpcConfiguration := &listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Certificate:        string(cer),
		PrivateKey:         string(key),
	}
	httpsConfiguration := &listeners.HTTPSConfiguration{}

	processor, err := upload.New(&upload.Configuration{Capacity: "small"}, derivation.New(fixtures.Program))
	assert.Nil(t, err, "upload processor")
	runtime := host.New(processor)

	err = rpc.Initialise(rpcConfiguration, httpsConfiguration, "9.9", runtime)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(rpcConfiguration, httpsConfiguration, "9.9", runtime)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	conn, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "9.9", reply.Version, "wrong version")
	assert.Equal(t, "small", reply.Capacity, "wrong capacity")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
	_ = client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "wrong second Finalise")
}

func TestInitialiseWhenInvalidCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	processor, _ := upload.New(&upload.Configuration{}, derivation.New(fixtures.Program))

	err := rpc.Initialise(
		&listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{"127.0.0.1:1234"},
			Certificate:        "bad",
			PrivateKey:         "bad",
		},
		&listeners.HTTPSConfiguration{},
		"9.9",
		host.New(processor),
	)
	assert.NotNil(t, err, "wrong Initialise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "should not be initialised")
}
