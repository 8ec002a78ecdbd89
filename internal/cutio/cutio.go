// Package cutio marshals cut rows and batches to and from the wire
// formats a caller outside the core needs: a compact binary row encoding
// (mirroring internal/state/store.go's encodeVector/decodeVector, widened
// from a fixed [128]float32 to a variable-length []float64) and a JSON
// fixture format for feeding a pruner from the command line or from
// tests.
package cutio

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// EncodeRow encodes a as little-endian float64s.
func EncodeRow(a []float64) []byte {
	buf := make([]byte, len(a)*8)
	for i, f := range a {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

// DecodeRow decodes b into a row of dim float64s. It returns an error if
// b's length doesn't match dim exactly.
func DecodeRow(b []byte, dim int) ([]float64, error) {
	if len(b) != dim*8 {
		return nil, fmt.Errorf("cutio: DecodeRow: want %d bytes for dim %d, got %d", dim*8, dim, len(b))
	}
	a := make([]float64, dim)
	for i := range a {
		a[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return a, nil
}

// FixtureCut is one candidate cut in a JSON fixture file, the format
// accepted by cmd/prunerctl's feed subcommand.
type FixtureCut struct {
	A       []float64 `json:"a"`
	B       float64   `json:"b"`
	IsMyCut bool      `json:"is_my_cut"`
}

// FixtureBatch is a fixture file's top-level shape: a batch of
// candidate cuts offered to AddCuts in one call.
type FixtureBatch struct {
	Cuts []FixtureCut `json:"cuts"`
}

// DecodeFixtureBatch parses a fixture file's JSON contents.
func DecodeFixtureBatch(data []byte) (FixtureBatch, error) {
	var batch FixtureBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return FixtureBatch{}, fmt.Errorf("cutio: decode fixture: %w", err)
	}
	return batch, nil
}

// EncodeFixtureBatch serializes a batch back to JSON, pretty-printed for
// human inspection.
func EncodeFixtureBatch(batch FixtureBatch) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cutio: encode fixture: %w", err)
	}
	return data, nil
}

// Rows unpacks a fixture batch into AddCuts's three parallel slices.
func (b FixtureBatch) Rows() (a [][]float64, beta []float64, isMyCut []bool) {
	a = make([][]float64, len(b.Cuts))
	beta = make([]float64, len(b.Cuts))
	isMyCut = make([]bool, len(b.Cuts))
	for i, c := range b.Cuts {
		a[i] = c.A
		beta[i] = c.B
		isMyCut[i] = c.IsMyCut
	}
	return a, beta, isMyCut
}
