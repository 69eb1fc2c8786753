package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"

	hefty "github.com/shabbyrobe/go-hefty"
)

func TestRun(t *testing.T) {
	for idx, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"add", "5", "3"}, "8\n"},
		{[]string{"sub", "5", "8"}, "-3\n"},
		{[]string{"mul", "12", "--", "-5"}, "-60\n"},
		{[]string{"quo", "100", "7"}, "14\n"},
		{[]string{"rem", "100", "7"}, "2\n"},
		{[]string{"quorem", "--", "-7", "2"}, "-3\n-1\n"},
		{[]string{"xgcd", "240", "46"}, "2\n-9\n47\n"},
		{[]string{"modinv", "17", "3120"}, "2753\n"},
		{[]string{"shl", "3", "4"}, "48\n"},
		{[]string{"shr", "100", "2"}, "25\n"},
		{[]string{"neg", "--hex", "80"}, "0080\n"},
		{[]string{"add", "--hex", "7f", "01"}, "0080\n"},
		{[]string{"trim", "--hex", "ffff80"}, "80\n"},
		{[]string{"abs", "--", "-340282366920938463463374607431768211456"}, "340282366920938463463374607431768211456\n"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, strings.Join(tc.args, " ")), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var out bytes.Buffer
			tt.MustOK(run(tc.args, &out))
			tt.MustEqual(tc.out, out.String())
		})
	}
}

func TestRunDump(t *testing.T) {
	tt := assert.WrapTB(t)
	var out bytes.Buffer
	tt.MustOK(run([]string{"add", "--dump", "127", "1"}, &out))
	tt.MustAssert(strings.Contains(out.String(), "operand 0: 127"), out.String())
	tt.MustAssert(strings.Contains(out.String(), "result 0: 128"), out.String())
	tt.MustAssert(strings.Contains(out.String(), "00000000  00 80"), out.String())
}

func TestRunErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	var out bytes.Buffer

	err := run([]string{"quo", "1", "0"}, &out)
	tt.MustAssert(errors.Is(err, hefty.ErrDivisionByZero))

	err = run([]string{"modinv", "4", "10"}, &out)
	tt.MustAssert(errors.Is(err, hefty.ErrNotInvertible))

	err = run([]string{"neg", "--hex", ""}, &out)
	tt.MustAssert(errors.Is(err, hefty.ErrEmpty))

	tt.MustAssert(run([]string{"shl", "1", "--", "-1"}, &out) != nil)
	tt.MustAssert(run([]string{"add", "1", "x"}, &out) != nil)
	tt.MustAssert(run([]string{"add", "1"}, &out) != nil)
}
