// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	dumpPieceSize = 4096
)

// setup command handler
//
// commands that run to create certificate files these commands
// cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "status", "sessions", "dump":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  status SEED-KEY                     - show the upload session for a seed key\n")
		fmt.Printf("\n")

		fmt.Printf("  sessions OWNER                      - list the upload sessions of an owner\n")
		fmt.Printf("\n")

		fmt.Printf("  dump SEED-KEY [FILE]                - write the uploaded bytes to stdout/file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the account and session pools are open so these commands can
// inspect uploads without starting the RPC services
func processDataCommand(log *logger.L, arguments []string, runtime *host.Runtime) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "status":
		seed := accountArgument(arguments, "seed key")

		session, err := runtime.Processor().Status(host.NewView(storage.Pool.Accounts), seed)
		if nil != err {
			exitwithstatus.Message("status error: %s", err)
		}
		s, err := json.MarshalIndent(session, "", "  ")
		if nil != err {
			exitwithstatus.Message("status JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	case "sessions":
		owner := accountArgument(arguments, "owner")

		cursor := storage.Pool.Sessions.NewFetchCursor().Prefix(owner.Bytes())
		err := cursor.Map(func(key []byte, value []byte) error {
			control, err := account.FromBytes(key[account.AccountLength:])
			if nil != err {
				return err
			}
			seed, err := account.FromBytes(value)
			if nil != err {
				return err
			}
			fmt.Printf("control: %s  seed key: %s\n", control, seed)
			return nil
		})
		if nil != err {
			exitwithstatus.Message("sessions error: %s", err)
		}

	case "dump":
		seed := accountArgument(arguments, "seed key")

		output := "-"
		if len(arguments) > 1 {
			output = strings.TrimSpace(arguments[1])
		}

		n, err := dumpData(runtime, seed, output)
		if nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}
		log.Infof("dumped: %d bytes for seed key: %s", n, seed)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// write the bytes before the cursor to a file, "-" is stdout
func dumpData(runtime *host.Runtime, seed account.Account, output string) (int, error) {
	accounts := host.NewView(storage.Pool.Accounts)

	session, err := runtime.Processor().Status(accounts, seed)
	if nil != err {
		return 0, err
	}

	fd := os.Stdout
	if "" != output && "-" != output {
		fd, err = os.Create(output)
		if nil != err {
			return 0, err
		}
		defer fd.Close()
	}

	total := int(session.Control.Cursor)
	written := 0
	for written < total {
		count := total - written
		if count > dumpPieceSize {
			count = dumpPieceSize
		}
		data, err := runtime.Processor().Read(accounts, seed, written, count)
		if nil != err {
			return written, err
		}
		if _, err := fd.Write(data); nil != err {
			return written, err
		}
		written += len(data)
	}
	return written, nil
}

// decode the first argument as a base58 account
func accountArgument(arguments []string, name string) account.Account {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing %s argument", name)
	}
	a, err := account.FromBase58(strings.TrimSpace(arguments[0]))
	if nil != err {
		exitwithstatus.Message("error in %s: %q  error: %s", name, arguments[0], err)
	}
	return a
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
