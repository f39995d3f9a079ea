package bodyio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"nbodysim/pkg/nbody"
)

const fieldsPerRecord = 8

// Read parses the whitespace-delimited body text format from r. Whitespace
// runs (spaces or newlines, interchangeably) separate fields; a record is
// complete once eight numeric fields have been consumed.
func Read(r io.Reader) ([]nbody.Body, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var fields []float64
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, wrapf(ErrInputMalformed, "invalid numeric field %q", tok)
		}
		fields = append(fields, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapf(ErrIoFailure, "reading body stream")
	}

	if len(fields)%fieldsPerRecord != 0 {
		return nil, wrapf(ErrInputMalformed, "got %d fields, not a multiple of %d", len(fields), fieldsPerRecord)
	}

	bodies := make([]nbody.Body, 0, len(fields)/fieldsPerRecord)
	for i := 0; i < len(fields); i += fieldsPerRecord {
		f := fields[i : i+fieldsPerRecord]
		bodies = append(bodies, nbody.Body{
			Pos:    nbody.Vec3{X: f[0], Y: f[1], Z: f[2]},
			Vel:    nbody.Vec3{X: f[3], Y: f[4], Z: f[5]},
			Mass:   f[6],
			Radius: f[7],
		})
	}
	return bodies, nil
}

// Write renders bodies, one record per line, terminated by a trailing
// newline.
func Write(w io.Writer, bodies []nbody.Body) error {
	bw := bufio.NewWriter(w)
	for _, b := range bodies {
		if _, err := bw.WriteString(b.AsText()); err != nil {
			return wrapf(ErrIoFailure, "writing body record")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return wrapf(ErrIoFailure, "writing record separator")
		}
	}
	if err := bw.Flush(); err != nil {
		return wrapf(ErrIoFailure, "flushing body stream")
	}
	return nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]nbody.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapf(ErrIoFailure, "opening %q", path)
	}
	defer f.Close()

	bodies, err := Read(f)
	if err != nil {
		return nil, err
	}
	return bodies, nil
}

// WriteFile creates (or truncates) path and writes bodies to it with Write.
func WriteFile(path string, bodies []nbody.Body) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapf(ErrIoFailure, "creating %q", path)
	}
	defer f.Close()

	if err := Write(f, bodies); err != nil {
		return err
	}
	return nil
}
