package matrix

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// npy format version 1.0 constants.
const (
	npyMagic     = "\x93NUMPY"
	npyAlign     = 64
	npyPrefixLen = len(npyMagic) + 2 + 2
)

// WriteNPZ stores m at path as a compressed scipy sparse archive. The file
// is written to a temporary sibling and renamed into place.
func WriteNPZ(path string, m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("WriteNPZ: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = EncodeNPZ(tmp, m); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("WriteNPZ: %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteNPZ: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteNPZ: %w", err)
	}

	return nil
}

// EncodeNPZ writes the archive members of m to w in the order
// scipy.sparse.save_npz uses.
func EncodeNPZ(w io.Writer, m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	indices, err := toInt32(m.Indices)
	if err != nil {
		return err
	}
	indptr, err := toInt32(m.Indptr)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	members := []struct {
		name  string
		descr string
		shape string
		body  []byte
	}{
		{"indices.npy", "<i4", shape1(len(indices)), int32Bytes(indices)},
		{"indptr.npy", "<i4", shape1(len(indptr)), int32Bytes(indptr)},
		{"format.npy", "|S3", "()", []byte("csr")},
		{"shape.npy", "<i8", "(2,)", int64Bytes([]int64{int64(m.Rows), int64(m.Cols)})},
		{"data.npy", "<f8", shape1(len(m.Data)), float64Bytes(m.Data)},
	}
	for _, mem := range members {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: mem.name, Method: zip.Deflate})
		if err != nil {
			return err
		}
		if _, err = fw.Write(npyHeader(mem.descr, mem.shape)); err != nil {
			return err
		}
		if _, err = fw.Write(mem.body); err != nil {
			return err
		}
	}

	return zw.Close()
}

// npyHeader renders the magic, version and padded dict header of a C-order
// array. The total header length is a multiple of npyAlign.
func npyHeader(descr, shape string) []byte {
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }", descr, shape)
	pad := npyAlign - (npyPrefixLen+len(dict)+1)%npyAlign
	if pad == npyAlign {
		pad = 0
	}
	dict += strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(dict)))
	buf.WriteString(dict)

	return buf.Bytes()
}

// shape1 renders a one-dimensional shape tuple.
func shape1(n int) string { return fmt.Sprintf("(%d,)", n) }

func toInt32(xs []int) ([]int32, error) {
	out := make([]int32, len(xs))
	for i, x := range xs {
		if x > math.MaxInt32 || x < math.MinInt32 {
			return nil, fmt.Errorf("value %d at %d: %w", x, i, ErrTooLarge)
		}
		out[i] = int32(x)
	}

	return out, nil
}

func int32Bytes(xs []int32) []byte {
	out := make([]byte, 4*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(x))
	}

	return out
}

func int64Bytes(xs []int64) []byte {
	out := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(out[8*i:], uint64(x))
	}

	return out
}

func float64Bytes(xs []float64) []byte {
	out := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(x))
	}

	return out
}

// ReadNPZ loads a CSR archive written by WriteNPZ or scipy.sparse.save_npz
// (int32 indices, float64 data).
func ReadNPZ(path string) (*CSR, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("ReadNPZ: %w", err)
	}
	defer zr.Close()

	members := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("ReadNPZ: %s: %w", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("ReadNPZ: %s: %w", f.Name, err)
		}
		members[f.Name] = raw
	}

	body := func(name, descr string) ([]byte, error) {
		raw, ok := members[name]
		if !ok {
			return nil, fmt.Errorf("ReadNPZ: missing %s: %w", name, ErrBadArchive)
		}
		return npyBody(raw, descr)
	}

	format, err := body("format.npy", "|S3")
	if err != nil {
		return nil, err
	}
	if string(format) != "csr" {
		return nil, fmt.Errorf("ReadNPZ: format %q: %w", format, ErrBadArchive)
	}
	shape, err := body("shape.npy", "<i8")
	if err != nil {
		return nil, err
	}
	if len(shape) != 16 {
		return nil, fmt.Errorf("ReadNPZ: shape: %w", ErrBadArchive)
	}
	data, err := body("data.npy", "<f8")
	if err != nil {
		return nil, err
	}
	indices, err := body("indices.npy", "<i4")
	if err != nil {
		return nil, err
	}
	indptr, err := body("indptr.npy", "<i4")
	if err != nil {
		return nil, err
	}

	m := &CSR{
		Rows:    int(int64(binary.LittleEndian.Uint64(shape[0:]))),
		Cols:    int(int64(binary.LittleEndian.Uint64(shape[8:]))),
		Data:    make([]float64, len(data)/8),
		Indices: make([]int, len(indices)/4),
		Indptr:  make([]int, len(indptr)/4),
	}
	for i := range m.Data {
		m.Data[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	for i := range m.Indices {
		m.Indices[i] = int(int32(binary.LittleEndian.Uint32(indices[4*i:])))
	}
	for i := range m.Indptr {
		m.Indptr[i] = int(int32(binary.LittleEndian.Uint32(indptr[4*i:])))
	}
	if len(m.Indptr) != m.Rows+1 || len(m.Indices) != len(m.Data) {
		return nil, fmt.Errorf("ReadNPZ: inconsistent CSR arrays: %w", ErrBadArchive)
	}

	return m, nil
}

// npyBody validates the .npy header of raw against descr and returns the
// array bytes that follow it.
func npyBody(raw []byte, descr string) ([]byte, error) {
	if len(raw) < npyPrefixLen || string(raw[:len(npyMagic)]) != npyMagic {
		return nil, fmt.Errorf("bad npy magic: %w", ErrBadArchive)
	}
	if raw[len(npyMagic)] != 1 {
		return nil, fmt.Errorf("npy version %d: %w", raw[len(npyMagic)], ErrBadArchive)
	}
	hlen := int(binary.LittleEndian.Uint16(raw[len(npyMagic)+2:]))
	if npyPrefixLen+hlen > len(raw) {
		return nil, fmt.Errorf("truncated npy header: %w", ErrBadArchive)
	}
	header := string(raw[npyPrefixLen : npyPrefixLen+hlen])
	if !strings.Contains(header, "'descr': '"+descr+"'") {
		return nil, fmt.Errorf("npy dtype is not %s: %w", descr, ErrBadArchive)
	}
	if strings.Contains(header, "'fortran_order': True") {
		return nil, fmt.Errorf("fortran-ordered npy: %w", ErrBadArchive)
	}

	return raw[npyPrefixLen+hlen:], nil
}
