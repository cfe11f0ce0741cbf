// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/fixtures"
	"github.com/bitmark-inc/chunkwriter/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

func (h *testHandler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chunkwriter/rpc", h.RPC)
	mux.HandleFunc("/chunkwriter/details", h.Details)
	mux.HandleFunc("/", h.Root)
	return mux
}

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // ignore certificate verification
	},
}

func setupHTTPS(t *testing.T, h *testHandler) (int, listeners.Listener) {
	allow := "127.0.0.1/32"
	port := randomPort()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {allow},
		},
	}

	tlsConf, _ := serverTLS(t)

	l, err := listeners.NewHTTPS(
		&conf,
		logger.New(fixtures.LogCategory),
		tlsConf,
		h,
	)
	if err != nil {
		t.Fatalf("NewHTTPS with error: %s", err)
	}
	return port, l
}

func get(t *testing.T, url string) string {
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("client get with error: %s", err)
	}
	defer resp.Body.Close()

	content, _ := ioutil.ReadAll(resp.Body)
	return string(content)
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := &testHandler{}
	port, l := setupHTTPS(t, h)

	err := l.Serve()
	assert.Nil(t, err, "wrong Serve")
	defer l.Stop()

	url := fmt.Sprintf("https://127.0.0.1:%d/chunkwriter/", port)
	assert.Equal(t, "RPC", get(t, url+"rpc"), "wrong RPC call")
	assert.Equal(t, "Details", get(t, url+"details"), "wrong Details call")
	assert.Equal(t, "Root", get(t, url+"other"), "wrong Root call")

	assert.Equal(t, 1, len(h.allow["details"]), "wrong allow list")
	assert.True(t, h.allow["details"][0].Contains(net.ParseIP("127.0.0.1")), "wrong allow network")
}

func TestHttpsListenerWhenNoListen(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, l, "listener should be disabled")
}

func TestHttpsListenerWhenMaxConnectionCountTooSmall(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 0,
			Listen:             []string{"127.0.0.1:1234"},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestHttpsListenerWhenInvalidAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := listeners.NewHTTPS(
		&listeners.HTTPSConfiguration{
			MaximumConnections: 1,
			Listen:             []string{"127.0.0.1:1234"},
			Allow: map[string][]string{
				"details": {"not-a-network"},
			},
		},
		logger.New(fixtures.LogCategory),
		&tls.Config{},
		&testHandler{},
	)
	assert.NotNil(t, err, "wrong error")
}
