// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"encoding/binary"
	"io"
)

// ByteSink accepts bytes one by one.
type ByteSink interface {
	Byte(b uint8)
}

// Sink is an append-only destination of serialized structures. Multi-byte
// values are always written in little-endian byte order.
//
// A Sink cannot fail.
type Sink interface {
	ByteSink
	Word(w uint16)
	DWord(d uint32)
	QWord(q uint64)
	Vec(v []byte)
}

// NewSink returns a Sink which derives all the multi-byte operations
// from ByteSink.Byte.
func NewSink(bs ByteSink) Sink {
	if sink, ok := bs.(Sink); ok {
		return sink
	}
	return derivedSink{ByteSink: bs}
}

type derivedSink struct {
	ByteSink
}

func (s derivedSink) Word(w uint16) {
	s.Vec(binary.LittleEndian.AppendUint16(nil, w))
}

func (s derivedSink) DWord(d uint32) {
	s.Vec(binary.LittleEndian.AppendUint32(nil, d))
}

func (s derivedSink) QWord(q uint64) {
	s.Vec(binary.LittleEndian.AppendUint64(nil, q))
}

func (s derivedSink) Vec(v []byte) {
	for _, b := range v {
		s.Byte(b)
	}
}

// Buffer is a growable Sink.
type Buffer []byte

var (
	_ Sink        = (*Buffer)(nil)
	_ io.WriterTo = (*Buffer)(nil)
)

// Byte implements ByteSink.
func (buf *Buffer) Byte(b uint8) {
	*buf = append(*buf, b)
}

// Word implements Sink.
func (buf *Buffer) Word(w uint16) {
	*buf = binary.LittleEndian.AppendUint16(*buf, w)
}

// DWord implements Sink.
func (buf *Buffer) DWord(d uint32) {
	*buf = binary.LittleEndian.AppendUint32(*buf, d)
}

// QWord implements Sink.
func (buf *Buffer) QWord(q uint64) {
	*buf = binary.LittleEndian.AppendUint64(*buf, q)
}

// Vec implements Sink.
func (buf *Buffer) Vec(v []byte) {
	*buf = append(*buf, v...)
}

// Bytes returns the accumulated bytes.
func (buf *Buffer) Bytes() []byte {
	return *buf
}

// Len returns the amount of accumulated bytes.
func (buf *Buffer) Len() int {
	return len(*buf)
}

// WriteTo implements io.WriterTo.
func (buf *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(*buf)
	return int64(n), err
}
