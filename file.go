package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	extjfx "github.com/extjfx/extjfx/lib"
)

func file(name string, create bool) (*os.File, error) {
	switch name {
	case "stdin":
		return os.Stdin, nil
	case "stdout":
		return os.Stdout, nil
	default:
		if create {
			return os.Create(name)
		}
		return os.Open(name)
	}
}

// decoders opens every input file and returns one point decoder per file,
// sniffing the encoding of each. maxInput caps the bytes read per file,
// -1 means no limit.
func decoders(files []string, maxInput int64) ([]extjfx.Decoder, io.Closer, error) {
	closer := make(multiCloser, 0, len(files))
	decs := make([]extjfx.Decoder, 0, len(files))
	for _, f := range files {
		rc, err := file(f, false)
		if err != nil {
			return nil, closer, err
		}
		closer = append(closer, rc)

		var r io.Reader = rc
		if maxInput >= 0 {
			r = io.LimitReader(rc, maxInput)
		}

		dec := extjfx.DecoderFor(r)
		if dec == nil {
			return nil, closer, fmt.Errorf("decode: can't detect encoding of %q", f)
		}

		decs = append(decs, dec)
	}
	return decs, closer, nil
}

// readPoints drains every decoder in order.
func readPoints(decs []extjfx.Decoder) ([]extjfx.Point, error) {
	var ps []extjfx.Point
	for _, dec := range decs {
		for {
			var p extjfx.Point
			if err := dec.Decode(&p); err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			ps = append(ps, p)
		}
	}
	return ps, nil
}

type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var errs []string
	for _, c := range mc {
		if err := c.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}
