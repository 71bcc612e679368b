package main

import (
	"fmt"
	"strconv"

	"gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/sparsix/matrix"
)

// outFlag redirects a command's encoded result into a file.
var outFlag = cli.StringFlag{
	Name:  "out",
	Usage: "write the encoded result to this file instead of stdout",
}

// dirFlag picks the directory receiving the all command's result files.
var dirFlag = cli.StringFlag{
	Name:  "dir",
	Usage: "directory receiving the three result files",
	Value: "results",
}

var infoCommand = cli.Command{
	Action:    infoAction,
	Name:      "info",
	Usage:     "print dimensions and non-zero count of a matrix file",
	ArgsUsage: "<file>",
	Description: `
The sparsix info command loads one matrix file and prints its shape and
the number of stored non-zero entries.
`,
}

var addCommand = cli.Command{
	Action:    addAction,
	Name:      "add",
	Usage:     "add two matrices of equal shape",
	ArgsUsage: "<a> <b>",
	Flags:     []cli.Flag{outFlag},
	Description: `
The sparsix add command loads <a> and <b>, computes a+b, and writes the
encoded sum to --out or standard output. Pairs that cancel to zero are
not stored and not written.
`,
}

var subCommand = cli.Command{
	Action:    subAction,
	Name:      "sub",
	Usage:     "subtract the second matrix from the first",
	ArgsUsage: "<a> <b>",
	Flags:     []cli.Flag{outFlag},
	Description: `
The sparsix sub command loads <a> and <b>, computes a-b, and writes the
encoded difference to --out or standard output.
`,
}

var mulCommand = cli.Command{
	Action:    mulAction,
	Name:      "mul",
	Usage:     "multiply two matrices with a shared inner dimension",
	ArgsUsage: "<a> <b>",
	Flags:     []cli.Flag{outFlag},
	Description: `
The sparsix mul command loads <a> and <b>, computes the product a·b
(requires cols(a) == rows(b)), and writes the encoded result to --out or
standard output.
`,
}

var transposeCommand = cli.Command{
	Action:    transposeAction,
	Name:      "transpose",
	Usage:     "transpose a matrix",
	ArgsUsage: "<file>",
	Flags:     []cli.Flag{outFlag},
	Description: `
The sparsix transpose command loads one matrix file and writes its
transpose to --out or standard output.
`,
}

var scaleCommand = cli.Command{
	Action:    scaleAction,
	Name:      "scale",
	Usage:     "multiply every entry by an integer factor",
	ArgsUsage: "<file> <alpha>",
	Flags:     []cli.Flag{outFlag},
	Description: `
The sparsix scale command loads one matrix file, multiplies every stored
entry by the integer <alpha>, and writes the result to --out or standard
output. Scaling by zero yields an empty matrix of the same shape.
`,
}

var allCommand = cli.Command{
	Action:    allAction,
	Name:      "all",
	Usage:     "run multiplication, addition, and subtraction in one pass",
	ArgsUsage: "<a> <b>",
	Flags:     []cli.Flag{dirFlag},
	Description: `
The sparsix all command loads <a> and <b> and runs the three pairwise
operations, writing multiplication_result.txt, addition_result.txt, and
subtraction_result.txt into --dir. An operation the shapes do not permit
is logged and skipped; the others still run.
`,
}

func infoAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return fmt.Errorf("sparsix info command requires exactly 1 argument, the matrix file")
	}

	m, err := loadMatrix(ctx.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Printf("dimensions: %dx%d\n", m.Rows(), m.Cols())
	fmt.Printf("non-zero entries: %d\n", m.NonZeroCount())

	return nil
}

func addAction(ctx *cli.Context) error { return binaryAction(ctx, "add", matrix.Add) }

func subAction(ctx *cli.Context) error { return binaryAction(ctx, "sub", matrix.Sub) }

func mulAction(ctx *cli.Context) error { return binaryAction(ctx, "mul", matrix.Mul) }

// binaryAction is the shared driver behind add, sub, and mul: load both
// operand files, apply op, write the result.
func binaryAction(ctx *cli.Context, name string, op func(a, b *matrix.Matrix) (*matrix.Matrix, error)) error {
	if len(ctx.Args()) != 2 {
		return fmt.Errorf("sparsix %s command requires exactly 2 arguments, the operand files", name)
	}

	a, err := loadMatrix(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadMatrix(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	res, err := op(a, b)
	if err != nil {
		return err
	}

	return writeResult(res, ctx.String(outFlag.Name))
}

func transposeAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 1 {
		return fmt.Errorf("sparsix transpose command requires exactly 1 argument, the matrix file")
	}

	m, err := loadMatrix(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	res, err := matrix.Transpose(m)
	if err != nil {
		return err
	}

	return writeResult(res, ctx.String(outFlag.Name))
}

func scaleAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 2 {
		return fmt.Errorf("sparsix scale command requires exactly 2 arguments: the matrix file and the factor")
	}

	alpha, err := strconv.ParseInt(ctx.Args().Get(1), 10, 64)
	if err != nil {
		return fmt.Errorf("sparsix scale: factor %q is not an integer", ctx.Args().Get(1))
	}

	m, err := loadMatrix(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	res, err := matrix.Scale(m, alpha)
	if err != nil {
		return err
	}

	return writeResult(res, ctx.String(outFlag.Name))
}

func allAction(ctx *cli.Context) error {
	if len(ctx.Args()) != 2 {
		return fmt.Errorf("sparsix all command requires exactly 2 arguments, the operand files")
	}

	a, err := loadMatrix(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadMatrix(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	return runAll(a, b, ctx.String(dirFlag.Name))
}
