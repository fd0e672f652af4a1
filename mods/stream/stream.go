package stream

import (
	"io"

	"github.com/mapsmith/mapview/mods/stream/internal/fio"
	"github.com/mapsmith/mapview/mods/stream/spec"
)

// NewOutputStream opens a buffered stream writing to the given path,
// "-" meaning stdout.
func NewOutputStream(output string) (spec.OutputStream, error) {
	return fio.NewOutputStream(output)
}

// NewInputStream opens a stream reading from the given path, "-"
// meaning stdin.
func NewInputStream(input string) (spec.InputStream, error) {
	return fio.NewInputStream(input)
}

type WriterOutputStream struct {
	Writer io.Writer
}

func (out *WriterOutputStream) Write(buf []byte) (int, error) {
	return out.Writer.Write(buf)
}

func (out *WriterOutputStream) Flush() error {
	return nil
}

func (out *WriterOutputStream) Close() error {
	if wc, ok := out.Writer.(io.Closer); ok {
		return wc.Close()
	}
	return nil
}

type ReaderInputStream struct {
	Reader io.Reader
}

func (in *ReaderInputStream) Read(p []byte) (int, error) {
	return in.Reader.Read(p)
}

func (in *ReaderInputStream) Close() error {
	if rc, ok := in.Reader.(io.Closer); ok {
		return rc.Close()
	}
	return nil
}
