// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

const (
	formatLines  = "lines"
	formatChunks = "chunks"
	formatCSV    = "csv"

	maxLineSize = 16 << 20
)

// csvRow is one record of a CSV input; only the data column is used.
type csvRow struct {
	Data string `csv:"data"`
}

// readBlocks splits r into blocks according to format.
func readBlocks(r io.Reader, format string, chunkSize int) ([][]byte, error) {
	switch format {
	case formatLines:
		return readLines(r)
	case formatChunks:
		return readChunks(r, chunkSize)
	case formatCSV:
		return readCSV(r)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

func readLines(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var blocks [][]byte
	for scanner.Scan() {
		blocks = append(blocks, bytes.TrimSuffix(append([]byte(nil), scanner.Bytes()...), []byte{'\r'}))
	}
	return blocks, errors.Wrap(scanner.Err(), "unable to read lines")
}

// readChunks cuts r into chunkSize blocks; the last one may be shorter.
func readChunks(r io.Reader, chunkSize int) ([][]byte, error) {
	if chunkSize <= 0 {
		return nil, errors.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	var blocks [][]byte
	for {
		chunk := make([]byte, chunkSize)
		n, err := io.ReadFull(r, chunk)
		if n > 0 {
			blocks = append(blocks, chunk[:n])
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return blocks, nil
		default:
			return nil, errors.Wrap(err, "unable to read chunk")
		}
	}
}

func readCSV(r io.Reader) ([][]byte, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "unable to decode csv")
	}

	blocks := make([][]byte, 0, len(rows))
	for _, row := range rows {
		blocks = append(blocks, []byte(row.Data))
	}
	return blocks, nil
}

// loadBlocks reads every named file in order, or stdin when there is none.
func loadBlocks(stdin io.Reader, paths []string, format string, chunkSize int) ([][]byte, error) {
	if len(paths) == 0 {
		return readBlocks(stdin, format, chunkSize)
	}

	var all [][]byte
	for _, path := range paths {
		blocks, err := readFile(path, format, chunkSize)
		if err != nil {
			return nil, err
		}
		all = append(all, blocks...)
	}
	return all, nil
}

func readFile(path, format string, chunkSize int) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open input")
	}
	defer file.Close()

	blocks, err := readBlocks(file, format, chunkSize)
	return blocks, errors.Wrapf(err, "unable to read %s", path)
}
