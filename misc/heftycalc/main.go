package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"

	"fortio.org/safecast"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	hefty "github.com/shabbyrobe/go-hefty"
)

// heftycalc runs a single hefty.Int operation from the command line. It is
// mostly useful for checking what the library does with a particular byte
// layout, so every operand and result can be dumped as raw bytes.

const usage = `Hefty integer calculator

Operands are decimal, or big-endian two's-complement hex bytes with --hex.`

type calc struct {
	hex  bool
	dump bool
	out  io.Writer
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cmd := newRootCommand(out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCommand(out io.Writer) *cobra.Command {
	c := &calc{out: out}

	root := &cobra.Command{
		Use:           "heftycalc",
		Short:         "Hefty integer calculator",
		Long:          usage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.hex, "hex", false, "Operands are two's-complement hex bytes")
	root.PersistentFlags().BoolVar(&c.dump, "dump", false, "Dump the raw bytes of operands and results")
	root.SetOut(out)

	binary := func(use, short string, fn func(a, b hefty.Int) ([]hefty.Int, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := c.operands(args)
				if err != nil {
					return err
				}
				results, err := fn(ops[0], ops[1])
				if err != nil {
					return err
				}
				return c.print(ops, results)
			},
		}
	}

	unary := func(use, short string, fn func(a hefty.Int) hefty.Int) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := c.operands(args)
				if err != nil {
					return err
				}
				return c.print(ops, []hefty.Int{fn(ops[0])})
			},
		}
	}

	shift := func(use, short string, fn func(a hefty.Int, n uint) hefty.Int) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <n>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := c.operands(args[:1])
				if err != nil {
					return err
				}
				n, err := shiftCount(args[1])
				if err != nil {
					return err
				}
				return c.print(ops, []hefty.Int{fn(ops[0], n)})
			},
		}
	}

	root.AddCommand(
		binary("add", "a + b", func(a, b hefty.Int) ([]hefty.Int, error) {
			return []hefty.Int{a.Add(b)}, nil
		}),
		binary("sub", "a - b", func(a, b hefty.Int) ([]hefty.Int, error) {
			return []hefty.Int{a.Sub(b)}, nil
		}),
		binary("mul", "a * b", func(a, b hefty.Int) ([]hefty.Int, error) {
			return []hefty.Int{a.Mul(b)}, nil
		}),
		binary("quo", "a / b, truncated towards zero", func(a, b hefty.Int) ([]hefty.Int, error) {
			q, err := a.Quo(b)
			return []hefty.Int{q}, err
		}),
		binary("rem", "a % b, with the sign of a", func(a, b hefty.Int) ([]hefty.Int, error) {
			r, err := a.Rem(b)
			return []hefty.Int{r}, err
		}),
		binary("quorem", "a / b and a % b", func(a, b hefty.Int) ([]hefty.Int, error) {
			q, r, err := a.QuoRem(b)
			return []hefty.Int{q, r}, err
		}),
		binary("xgcd", "g, x, y such that a*x + b*y == g", func(a, b hefty.Int) ([]hefty.Int, error) {
			g, x, y := a.XGCD(b)
			return []hefty.Int{g, x, y}, nil
		}),
		binary("modinv", "x such that a*x ≡ 1 (mod b)", func(a, b hefty.Int) ([]hefty.Int, error) {
			x, err := hefty.ModInverse(a, b)
			return []hefty.Int{x}, err
		}),
		unary("neg", "-a", hefty.Int.Neg),
		unary("abs", "|a|", hefty.Int.Abs),
		unary("trim", "a in its shortest representation", hefty.Int.Trim),
		shift("shl", "a << n", hefty.Int.Lsh),
		shift("shr", "a >> n", hefty.Int.Rsh),
	)

	return root
}

func (c *calc) operands(args []string) ([]hefty.Int, error) {
	out := make([]hefty.Int, 0, len(args))
	for _, arg := range args {
		v, err := c.parse(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (c *calc) parse(s string) (hefty.Int, error) {
	if c.hex {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return hefty.Int{}, fmt.Errorf("heftycalc: operand %q: %w", s, err)
		}
		v, err := hefty.FromBytes(raw)
		if err != nil {
			return hefty.Int{}, fmt.Errorf("heftycalc: operand %q: %w", s, err)
		}
		return v, nil
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return hefty.Int{}, fmt.Errorf("heftycalc: operand %q is not a decimal integer", s)
	}
	return hefty.FromBigInt(b), nil
}

func (c *calc) print(operands, results []hefty.Int) error {
	if c.dump {
		for i, op := range operands {
			fmt.Fprintf(c.out, "operand %d: %s\n%s", i, op, spew.Sdump(op.Bytes()))
		}
	}
	for i, r := range results {
		if c.dump {
			fmt.Fprintf(c.out, "result %d: %s\n%s", i, r, spew.Sdump(r.Bytes()))
		} else if c.hex {
			fmt.Fprintf(c.out, "%x\n", r.Bytes())
		} else {
			fmt.Fprintln(c.out, r)
		}
	}
	return nil
}

func shiftCount(s string) (uint, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("heftycalc: shift count %q: %w", s, err)
	}
	u, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, fmt.Errorf("heftycalc: shift count %q: %w", s, err)
	}
	return u, nil
}
