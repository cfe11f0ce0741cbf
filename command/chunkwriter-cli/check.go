// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/chain"
	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/configuration"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/util"
)

// errors - keep in alphabetic order
var (
	ErrInvalidNetwork      = fault.InvalidError("invalid network")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredFileName    = fault.InvalidError("file name is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredReceiver    = fault.InvalidError("receiver is required")
	ErrRequiredSeedKey     = fault.InvalidError("seed key is required")
	ErrRequiredTotal       = fault.InvalidError("declared total is required")
)

// map the network aliases to a chain name
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "", chain.Chunkwriter, "live":
		return chain.Chunkwriter, nil
	case chain.Testing, "test":
		return chain.Testing, nil
	case chain.Local, "regression":
		return chain.Local, nil
	default:
		return "", ErrInvalidNetwork
	}
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required, each entry must be IP:port
func checkConnect(connect string) ([]string, error) {
	connections := []string{}
	for _, c := range strings.Split(connect, ",") {
		if "" == strings.TrimSpace(c) {
			continue
		}
		hostPort, err := util.CanonicalIPandPort(c)
		if nil != err {
			return nil, err
		}
		connections = append(connections, hostPort)
	}
	if 0 == len(connections) {
		return nil, ErrRequiredConnect
	}

	return connections, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}

	return fileName, nil
}

// exactly one of an existing seed or a new seed
func checkSeed(seed string, new bool) (string, error) {

	if "" == seed {
		if !new {
			return "", fault.IncompatibleOptions
		}
		key, err := account.NewPrivateKey()
		if nil != err {
			return "", err
		}
		return key.Seed(), nil
	}

	if new {
		return "", fault.IncompatibleOptions
	}

	// validate the seed
	_, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}

	return seed, nil
}

// seed key is a base58 account
func checkSeedKey(seedKey string) (account.Account, error) {
	if "" == seedKey {
		return account.Account{}, ErrRequiredSeedKey
	}
	return account.FromBase58(seedKey)
}

// an identity name from the configuration or a base58 account
func checkAccount(name string, config *configuration.Configuration) (account.Account, error) {
	if a, err := config.Account(name); nil == err {
		return a, nil
	}
	return account.FromBase58(name)
}

// identity with password prompt if no password was given
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (string, *configuration.Private, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptPassword()
		if nil != err {
			return "", nil, err
		}
	}

	owner, err := config.Private(password, name)
	if nil != err {
		return "", nil, err
	}

	return name, owner, nil
}

// check if file exists and whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
