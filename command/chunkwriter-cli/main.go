// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/chain"
	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/configuration"
)

type metadata struct {
	file             string
	config           *configuration.Configuration
	chain            string
	save             bool
	verbose          bool
	connectionOffset int
	e                io.Writer
	w                io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "chunkwriter-cli"
	app.Usage = "resumable chunked uploads to chunkwriterd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Chunkwriter,
			Usage: " connect to chunkwriter `NETWORK` [chunkwriter|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.IntFlag{
			Name:  "connection, c",
			Value: 0,
			Usage: " `INDEX` of the configured connection to use",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise chunkwriter-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*chunkwriterd host/IP and port, `HOST:PORT`[,HOST:PORT...]",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "begin",
			Usage:     "begin an upload session without sending any data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed-key, k",
					Value: "",
					Usage: " session seed key `ACCOUNT` [random]",
				},
				cli.IntFlag{
					Name:  "total, t",
					Value: 0,
					Usage: "*declared total `BYTES`",
				},
				cli.IntFlag{
					Name:  "chunk-limit, l",
					Value: 0,
					Usage: " maximum chunk `BYTES` [server default]",
				},
			},
			Action: runBegin,
		},
		{
			Name:      "upload",
			Usage:     "upload a file, resuming from the ledger cursor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` of data to upload",
				},
				cli.StringFlag{
					Name:  "seed-key, k",
					Value: "",
					Usage: "*session seed key `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "total, t",
					Value: 0,
					Usage: " declared total `BYTES` [file size]",
				},
				cli.IntFlag{
					Name:  "chunk-limit, l",
					Value: 0,
					Usage: " maximum chunk `BYTES` [server default]",
				},
				cli.IntFlag{
					Name:  "chunk-size, z",
					Value: 0,
					Usage: " bytes sent per envelope `BYTES` [chunk limit]",
				},
				cli.BoolFlag{
					Name:  "follow, F",
					Usage: " keep uploading as the file grows until the total is reached",
				},
			},
			Action: runUpload,
		},
		{
			Name:      "status",
			Usage:     "display the status of an upload session",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed-key, k",
					Value: "",
					Usage: "*session seed key `ACCOUNT`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "read",
			Usage:     "read uploaded bytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed-key, k",
					Value: "",
					Usage: "*session seed key `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "offset, o",
					Value: 0,
					Usage: " first byte `OFFSET`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: -1,
					Usage: " `BYTES` to read [up to the cursor]",
				},
				cli.StringFlag{
					Name:  "output, O",
					Value: "-",
					Usage: " write to `FILE` [stdout]",
				},
			},
			Action: runRead,
		},
		{
			Name:      "list",
			Usage:     "list upload sessions of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runList,
		},
		{
			Name:      "transfer",
			Usage:     "request an owner change (the node rejects it as not implemented)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or `ACCOUNT` of the new owner",
				},
			},
			Action: runTransfer,
		},
		{
			Name:   "info",
			Usage:  "display chunkwriter-cli identities",
			Action: runInfo,
		},
		{
			Name:   "nodeInfo",
			Usage:  "display chunkwriterd status",
			Action: runNodeInfo,
		},
		{
			Name:  "version",
			Usage: "display chunkwriter-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command || "" == command || "help" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				chain:   network,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		offset := c.GlobalInt("connection")
		if offset < 0 || offset >= len(config.Connections) {
			return fmt.Errorf("connection index: %d is not in [0, %d)", offset, len(config.Connections))
		}

		c.App.Metadata["config"] = &metadata{
			file:             file,
			config:           config,
			chain:            network,
			save:             false,
			verbose:          verbose,
			connectionOffset: offset,
			e:                e,
			w:                w,
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
