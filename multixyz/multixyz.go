/*
 * multixyz.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package multixyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/chimie3d/gonomen"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Codec is the compression applied to an archive.
type Codec int

const (
	Plain Codec = iota
	Gzip
	Zstd
)

func (C Codec) String() string {
	switch C {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "plain"
}

// CodecFor returns the codec for a file name: ".zst" and ".zstd" are
// zstd, ".gz" is gzip and anything else is plain text.
func CodecFor(name string) Codec {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz":
		return Gzip
	}
	return Plain
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// zstd decoders don't return an error on Close.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func compressor(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

func decompressor(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

// Writer writes structures, one XYZ frame each, to an archive.
type Writer struct {
	f         io.Closer
	h         io.WriteCloser
	filename  string
	prec      int
	frames    int
	writeable bool
}

// Create creates the archive name, with the codec given by its extension.
// The optional precision is the number of decimals for the coordinates.
func Create(name string, precision ...int) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Create"}, true}
	}
	W, err := NewWriter(f, CodecFor(name), precision...)
	if err != nil {
		f.Close()
		return nil, errDecorate(err, "Create")
	}
	W.f = f
	W.filename = name
	return W, nil
}

// NewWriter returns a Writer that compresses with codec into w. Closing the
// Writer does not close w.
func NewWriter(w io.Writer, codec Codec, precision ...int) (*Writer, error) {
	h, err := compressor(w, codec)
	if err != nil {
		return nil, Error{"can't start " + codec.String() + " stream: " + err.Error(), "", []string{"NewWriter"}, true}
	}
	W := &Writer{h: h, prec: chem.DefaultXYZPrecision, writeable: true}
	if len(precision) > 0 && precision[0] >= 0 {
		W.prec = precision[0]
	}
	return W, nil
}

// WriteFrame appends mol as a frame, with comment in the comment line.
func (W *Writer) WriteFrame(mol *chem.Molecule, comment string) error {
	if W == nil || !W.writeable {
		return Error{UnIniWrite, "", []string{"WriteFrame"}, true}
	}
	if mol == nil {
		return Error{NilMolecule, W.filename, []string{"WriteFrame"}, true}
	}
	if err := chem.XYZWrite(W.h, mol.Coords(), mol, comment, W.prec); err != nil {
		return Error{err.Error(), W.filename, []string{"WriteFrame"}, true}
	}
	W.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

// Close flushes the archive and closes the file, if Create opened it.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.h.Close()
	if W.f != nil {
		if err2 := W.f.Close(); err == nil {
			err = err2
		}
	}
	if err != nil {
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	return nil
}

// Reader reads the frames of an archive in order.
type Reader struct {
	f        io.Closer
	dec      io.ReadCloser
	h        *bufio.Reader
	filename string
	readable bool
}

// Open opens the archive name, with the codec given by its extension.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	R, err := NewReader(bufio.NewReader(f), CodecFor(name))
	if err != nil {
		f.Close()
		e := err.(Error)
		e.filename = name
		e.Decorate("Open")
		return nil, e
	}
	R.f = f
	R.filename = name
	return R, nil
}

// NewReader returns a Reader that decompresses r with codec.
func NewReader(r io.Reader, codec Codec) (*Reader, error) {
	dec, err := decompressor(r, codec)
	if err != nil {
		return nil, Error{"can't read " + codec.String() + " stream: " + err.Error(), "", []string{"NewReader"}, true}
	}
	return &Reader{dec: dec, h: bufio.NewReader(dec), readable: true}, nil
}

// Next returns the next structure and its comment line. At the end of the
// archive it returns io.EOF, and the Reader is closed.
func (R *Reader) Next() (*chem.Molecule, string, error) {
	if R == nil || !R.readable {
		return nil, "", Error{UnIniRead, "", []string{"Next"}, true}
	}
	mol, comment, err := chem.XYZReadFrame(R.h)
	if errors.Is(err, io.EOF) {
		R.Close()
		return nil, "", io.EOF
	}
	if err != nil {
		return nil, "", Error{err.Error(), R.filename, []string{"Next"}, true}
	}
	return mol, comment, nil
}

// ReadAll reads every remaining frame.
func (R *Reader) ReadAll() ([]*chem.Molecule, []string, error) {
	var mols []*chem.Molecule
	var comments []string
	for {
		mol, c, err := R.Next()
		if err == io.EOF {
			return mols, comments, nil
		}
		if err != nil {
			return mols, comments, errDecorate(err, "ReadAll")
		}
		mols = append(mols, mol)
		comments = append(comments, c)
	}
}

// Close closes the archive. The Reader can't be used after this call.
func (R *Reader) Close() error {
	if R == nil || !R.readable {
		return nil
	}
	R.readable = false
	err := R.dec.Close()
	if R.f != nil {
		if err2 := R.f.Close(); err == nil {
			err = err2
		}
	}
	return err
}

// Errors

// Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	message  string
	filename string //the archive with problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return "multixyz error: " + err.message
	}
	return fmt.Sprintf("multixyz file %s error: %s", err.filename, err.message)
}

// Decorate adds dec to the call trail of the error and returns the trail.
func (E Error) Decorate(dec string) []string {
	//E is a copy, but deco shares the backing array when there is room.
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// FileName returns the archive the error is about, if any.
func (err Error) FileName() string { return err.filename }

// Critical returns true if the archive can't be used after the error.
func (err Error) Critical() bool { return err.critical }

// errDecorate adds caller to the trail of err, if err is an Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}

const (
	UnIniRead    = "archive not open for reading"
	UnIniWrite   = "archive not open for writing"
	UnableToOpen = "unable to open file"
	NilMolecule  = "given nil molecule"
)
