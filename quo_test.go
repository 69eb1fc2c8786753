package hefty

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestQuoRem(t *testing.T) {
	for idx, tc := range []struct {
		a, b, q, r Int
	}{
		{i64(100), i64(7), i64(14), i64(2)},
		{i64(7), i64(2), i64(3), i64(1)},
		{i64(-7), i64(2), i64(-3), i64(-1)},
		{i64(7), i64(-2), i64(-3), i64(1)},
		{i64(-7), i64(-2), i64(3), i64(-1)},
		{i64(0), i64(5), i64(0), i64(0)},
		{i64(5), i64(7), i64(0), i64(5)},
		{i64(7), i64(7), i64(1), i64(0)},
		{i64(1), i64(1), i64(1), i64(0)},
		{i64(-128), i64(-1), i64(128), i64(0)},
		{i64(-128), i64(1), i64(-128), i64(0)},
		{i64(127), i64(1), i64(127), i64(0)},
		{i64(32767), i64(255), i64(128), i64(127)},
		{bts(0x00, 0x00, 0x64), bts(0xFF, 0xF9), i64(-14), i64(2)},
		{ints("0xFFFF FFFF FFFF FFFE 0000 0000 0000 0001"), ints("0xFFFF FFFF FFFF FFFF"), ints("0xFFFF FFFF FFFF FFFF"), i64(0)},
		{ints("1000000000000000000000000000007"), ints("1000000000000"), ints("1000000000000000000"), i64(7)},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.a, tc.b, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r, err := tc.a.QuoRem(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.q.Equal(q), "quo found: %s", q)
			tt.MustAssert(tc.r.Equal(r), "rem found: %s", r)

			q, err = tc.a.Quo(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.q.Equal(q), "quo found: %s", q)

			r, err = tc.a.Rem(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.r.Equal(r), "rem found: %s", r)
		})
	}
}

func TestQuoByZero(t *testing.T) {
	for idx, a := range arithValues {
		t.Run(fmt.Sprintf("%d/%s", idx, a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for _, z := range []Int{i64(0), bts(0, 0), {}} {
				_, err := a.Quo(z)
				tt.MustEqual(ErrDivisionByZero, err)
				_, err = a.Rem(z)
				tt.MustEqual(ErrDivisionByZero, err)
				_, _, err = a.QuoRem(z)
				tt.MustEqual(ErrDivisionByZero, err)
			}
		})
	}
}

func TestQuoRemIdentity(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, a := range arithValues {
		for _, b := range arithValues {
			if b.IsZero() {
				continue
			}
			q, r, err := a.QuoRem(b)
			tt.MustOK(err)
			tt.MustAssert(q.Mul(b).Add(r).Equal(a), "%s / %s: q=%s r=%s", a, b, q, r)

			bq := new(big.Int).Quo(a.AsBigInt(), b.AsBigInt())
			br := new(big.Int).Rem(a.AsBigInt(), b.AsBigInt())
			tt.MustEqual(bq.String(), q.String(), "%s / %s", a, b)
			tt.MustEqual(br.String(), r.String(), "%s %% %s", a, b)
		}
	}
}
