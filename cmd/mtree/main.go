// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/mtree/corelog"
	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

func main() {
	app := &App{stdin: os.Stdin, stdout: os.Stdout}

	err := app.cliApp().Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	stdin  io.Reader
	stdout io.Writer

	hash      string
	sipKey    [hashers.SipKeySize]byte
	format    string
	chunkSize int
}

func (app *App) cliApp() *cli.App {
	return &cli.App{
		Name:     "mtree",
		Usage:    "build an append-only merkle tree over input blocks",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
		Writer:   app.stdout,
	}
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:      "root",
			Usage:     "print the root hash, size and depth",
			ArgsUsage: "[files...]",
			Action:    app.rootCmd,
		},
		{
			Name:      "trace",
			Usage:     "print the root after every push",
			ArgsUsage: "[files...]",
			Flags:     []cli.Flag{standardFlags[flagPreview]},
			Action:    app.traceCmd,
		},
		{
			Name:      "verify",
			Usage:     "build the tree and recompute every hash",
			ArgsUsage: "[files...]",
			Action:    app.verifyCmd,
		},
		{
			Name:  "hashes",
			Usage: "list supported hashes",
			Action: func(*cli.Context) error {
				for _, name := range hashers.Names() {
					fmt.Fprintf(app.stdout, "%-12s %d bit\n", name, hashers.Width(name))
				}
				return nil
			},
		},
	}
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		standardFlags[flagHash],
		standardFlags[flagSipKey],
		standardFlags[flagFormat],
		standardFlags[flagChunkSize],
		standardFlags[flagDebugLevel],
	}
}

func (app *App) InitCfg(c *cli.Context) error {
	level, err := corelog.ParseLevel(c.String(flagDebugLevel))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	logCfg := corelog.Config{}.Default()
	mtree.UseLogger(corelog.New("TREE", level, logCfg))

	app.hash = strings.ToLower(c.String(flagHash))
	if hashers.Width(app.hash) == 0 {
		return cli.NewExitError(errors.Errorf("unknown hash %q, supported %v", app.hash, hashers.Names()), 1)
	}

	if raw := c.String(flagSipKey); raw != "" {
		key, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
		if err != nil || len(key) != hashers.SipKeySize {
			return cli.NewExitError(errors.Errorf("sipkey must be %d hex encoded bytes", hashers.SipKeySize), 1)
		}
		copy(app.sipKey[:], key)
	}

	app.format = c.String(flagFormat)
	app.chunkSize = c.Int(flagChunkSize)
	return nil
}

// build pushes every input block into a fresh tree. onPush, if set, runs
// after each push.
func (app *App) build(c *cli.Context, onPush func(i int, block []byte, s session)) (session, error) {
	blocks, err := loadBlocks(app.stdin, c.Args().Slice(), app.format, app.chunkSize)
	if err != nil {
		return nil, err
	}

	s, err := newSession(app.hash, app.sipKey)
	if err != nil {
		return nil, err
	}

	for i, block := range blocks {
		s.push(block)
		if onPush != nil {
			onPush(i, block, s)
		}
	}
	return s, nil
}

func (app *App) rootCmd(c *cli.Context) error {
	s, err := app.build(c, nil)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to build tree"), 1)
	}

	root, ok := s.root()
	if !ok {
		root = "empty"
	}
	fmt.Fprintf(app.stdout, "root:  %s\nsize:  %d\ndepth: %d\n", root, s.size(), s.depth())
	return nil
}

func (app *App) traceCmd(c *cli.Context) error {
	preview := c.Int(flagPreview)

	var rows [][]string
	_, err := app.build(c, func(i int, block []byte, s session) {
		root, _ := s.root()
		rows = append(rows, []string{
			strconv.Itoa(i),
			previewBlock(block, preview),
			root,
			strconv.Itoa(s.depth()),
		})
	})
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to build tree"), 1)
	}

	table := tablewriter.NewWriter(app.stdout)
	table.SetHeader([]string{"#", "Block", "Root", "Depth"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func (app *App) verifyCmd(c *cli.Context) error {
	s, err := app.build(c, nil)
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "unable to build tree"), 1)
	}

	if err := s.verify(); err != nil {
		return cli.NewExitError(errors.Wrap(err, "tree is inconsistent"), 1)
	}
	fmt.Fprintf(app.stdout, "ok: %d blocks, depth %d\n", s.size(), s.depth())
	return nil
}

// previewBlock shows printable blocks as text and everything else as hex,
// cut to at most n bytes.
func previewBlock(block []byte, n int) string {
	cut := block
	if n > 0 && len(cut) > n {
		cut = cut[:n]
	}

	text := string(cut)
	if !strconv.CanBackquote(text) {
		text = hex.EncodeToString(cut)
	}
	if len(cut) < len(block) {
		text += "..."
	}
	return text
}
