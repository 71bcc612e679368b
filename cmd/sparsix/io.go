package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsix/codec"
	"github.com/katalvlaran/sparsix/matrix"
)

// Result file names produced by the all command, one per operation.
const (
	mulResultFile = "multiplication_result.txt"
	addResultFile = "addition_result.txt"
	subResultFile = "subtraction_result.txt"
)

// loadMatrix reads one matrix file and decodes it. The core errors carry
// line and coordinate detail already; only the file name is added here.
func loadMatrix(path string) (*matrix.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sparsix: read %s: %w", path, err)
	}
	m, err := codec.Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("sparsix: %s: %w", path, err)
	}

	return m, nil
}

// writeResult encodes m into path, or onto stdout when path is empty.
func writeResult(m *matrix.Matrix, path string) error {
	text, err := codec.Encode(m)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Print(text)

		return nil
	}
	if err = os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("sparsix: write %s: %w", path, err)
	}

	return nil
}

// runAll executes multiplication, addition, and subtraction on the pair
// and writes one result file per operation into dir. An operation the
// shapes do not permit is logged and skipped so the rest still run; I/O
// failures abort.
func runAll(a, b *matrix.Matrix, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sparsix all: create %s: %w", dir, err)
	}

	steps := []struct {
		name string
		file string
		op   func(a, b *matrix.Matrix) (*matrix.Matrix, error)
	}{
		{name: "multiplication", file: mulResultFile, op: matrix.Mul},
		{name: "addition", file: addResultFile, op: matrix.Add},
		{name: "subtraction", file: subResultFile, op: matrix.Sub},
	}
	for _, st := range steps {
		res, err := st.op(a, b)
		if err != nil {
			log.Printf("sparsix all: %s skipped: %v", st.name, err)
			continue
		}

		target := filepath.Join(dir, st.file)
		if err = writeResult(res, target); err != nil {
			return err
		}
		log.Printf("sparsix all: %s written to %s", st.name, target)
	}

	return nil
}
