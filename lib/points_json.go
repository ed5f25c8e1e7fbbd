package extjfx

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MarshalEasyJSON supports easyjson.Marshaler interface.
func (p Point) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"x":`)
	w.Float64(p.X)
	w.RawString(`,"y":`)
	w.Float64(p.Y)
	w.RawByte('}')
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface.
func (p *Point) UnmarshalEasyJSON(l *jlexer.Lexer) {
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		switch key {
		case "x":
			p.X = l.Float64()
		case "y":
			p.Y = l.Float64()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
}

// A Decoder decodes a Point and returns an error in case of failure.
type Decoder func(*Point) error

// Decode is an adapter method calling the Decoder function itself with the
// given parameters.
func (dec Decoder) Decode(p *Point) error { return dec(p) }

// An Encoder encodes a Point and returns an error in case of failure.
type Encoder func(*Point) error

// Encode is an adapter method calling the Encoder function itself with the
// given parameters.
func (enc Encoder) Encode(p *Point) error { return enc(p) }

// A DecoderFactory constructs a new Decoder from a given io.Reader.
type DecoderFactory func(io.Reader) Decoder

// NewJSONEncoder returns an Encoder that writes Points as one JSON object
// per line.
func NewJSONEncoder(w io.Writer) Encoder {
	return func(p *Point) error {
		jw := jwriter.Writer{}
		p.MarshalEasyJSON(&jw)
		jw.RawByte('\n')
		if jw.Error != nil {
			return jw.Error
		}
		_, err := jw.DumpTo(w)
		return err
	}
}

// NewJSONDecoder returns a Decoder that reads one JSON encoded Point per
// line.
func NewJSONDecoder(r io.Reader) Decoder {
	rd := bufio.NewReader(r)
	return func(p *Point) error {
		line, err := rd.ReadBytes('\n')
		if err != nil && (err != io.EOF || len(bytes.TrimSpace(line)) == 0) {
			return err
		}
		l := jlexer.Lexer{Data: line}
		p.UnmarshalEasyJSON(&l)
		return l.Error()
	}
}

// NewCSVEncoder returns an Encoder that writes Points as CSV records with
// the fields [x, y].
func NewCSVEncoder(w io.Writer) Encoder {
	enc := csv.NewWriter(w)
	return func(p *Point) error {
		err := enc.Write([]string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
		enc.Flush()
		return enc.Error()
	}
}

// NewCSVDecoder returns a Decoder that reads Points from CSV records
// written by NewCSVEncoder.
func NewCSVDecoder(r io.Reader) Decoder {
	dec := csv.NewReader(r)
	dec.FieldsPerRecord = 2
	return func(p *Point) (err error) {
		rec, err := dec.Read()
		if err != nil {
			return err
		}
		if p.X, err = strconv.ParseFloat(rec[0], 64); err != nil {
			return err
		}
		p.Y, err = strconv.ParseFloat(rec[1], 64)
		return err
	}
}

// DecoderFor automatically detects the encoding of the first bytes in the
// given io.Reader and returns the corresponding Decoder, or nil in case of
// failing to detect a supported encoding.
func DecoderFor(r io.Reader) Decoder {
	var buf bytes.Buffer
	for _, dec := range []DecoderFactory{
		NewJSONDecoder,
		NewCSVDecoder,
	} {
		rd := io.MultiReader(bytes.NewReader(buf.Bytes()), io.TeeReader(r, &buf))
		if err := dec(rd).Decode(&Point{}); err == nil {
			return dec(io.MultiReader(&buf, r))
		}
	}
	return nil
}
