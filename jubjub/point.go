// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package jubjub

import (
	"fmt"
	"math/big"
)

// PointBytesLen is the length of the serialized compressed form of a point.
const PointBytesLen = 32

// hexToBig converts the passed big-endian hex string into a big integer.  It
// only differs from the one available in math/big in that it panics on an
// invalid hex string since it will only ever be called with hardcoded, and
// therefore known good, constants.
func hexToBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return v
}

var (
	// fieldPrime is the prime of the finite field underlying the curve, which
	// is the order of the scalar field of BLS12-381.
	fieldPrime = hexToBig("73eda753299d7d483339d80809a1d805" +
		"53bda402fffe5bfeffffffff00000001")

	// paramD is the d constant of the twisted Edwards curve equation
	// -x^2 + y^2 = 1 + d*x^2*y^2, equal to -(10240/10241) in the field.  It
	// is not a square in the field, which makes the Edwards addition law
	// complete and guarantees the denominators below are never zero.
	paramD = hexToBig("2a9318e74bfa2b48f5fd9207e6bd7fd4" +
		"292d7f6d37579d2601065fd6d6343eb1")

	// Order is the order of the prime-order subgroup of the curve.  The full
	// group has Cofactor times as many points.
	Order = hexToBig("0e7db4ea6533afa906673b010134" +
		"3b00a6682093ccc81082d0970e5ed6f72cb7")

	bigOne = big.NewInt(1)
)

// Cofactor is the ratio of the full curve group order to the order of the
// prime-order subgroup.
const Cofactor = 8

// Point represents a point on the Jubjub curve in affine coordinates.
type Point struct {
	x *big.Int
	y *big.Int
}

// identity returns the neutral element (0, 1) of the curve group.
func identity() *Point {
	return &Point{x: new(big.Int), y: big.NewInt(1)}
}

// isOdd returns whether the passed big integer is odd.
func isOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}

// decompressX solves the curve equation for x given the y coordinate and the
// oddness of x.  Rearranging the curve equation yields
// x^2 = (y^2 - 1) / (d*y^2 + 1).
func decompressX(y *big.Int, xOdd bool) (*big.Int, error) {
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, fieldPrime)

	num := new(big.Int).Sub(y2, bigOne)
	num.Mod(num, fieldPrime)

	// The denominator is nonzero for every y since -1/d is not a square in
	// the field.
	den := new(big.Int).Mul(paramD, y2)
	den.Add(den, bigOne)
	den.Mod(den, fieldPrime)
	den.ModInverse(den, fieldPrime)

	x2 := num.Mul(num, den)
	x2.Mod(x2, fieldPrime)

	x := new(big.Int).ModSqrt(x2, fieldPrime)
	if x == nil {
		str := fmt.Sprintf("invalid point: x^2 = %x is not a square", x2)
		return nil, makeError(ErrPointNotOnCurve, str)
	}

	// Choose the root with the requested oddness.  Note that a negated zero
	// must be reduced back to zero so that an encoding which redundantly sets
	// the oddness bit for x = 0 still parses and reserializes canonically.
	if isOdd(x) != xOdd {
		x.Sub(fieldPrime, x)
		x.Mod(x, fieldPrime)
	}
	return x, nil
}

// ParsePoint parses a point from its 32-byte compressed serialization, which
// consists of the y coordinate encoded as a little-endian unsigned integer
// with the oddness of the x coordinate stored in the most significant bit.
//
// Parsing rejects encodings of the wrong length, y coordinates that are not
// reduced members of the field, and y coordinates for which no x coordinate
// exists on the curve.  Note that successfully parsing a point does NOT imply
// it is a member of the prime-order subgroup; callers validating externally
// supplied key material must check IsPrimeOrder separately.
func ParsePoint(serialized []byte) (*Point, error) {
	if len(serialized) != PointBytesLen {
		str := fmt.Sprintf("malformed point: invalid length %d",
			len(serialized))
		return nil, makeError(ErrPointInvalidLen, str)
	}

	var buf [PointBytesLen]byte
	for i, b := range serialized {
		buf[PointBytesLen-1-i] = b
	}
	xOdd := buf[0]&0x80 != 0
	buf[0] &= 0x7f

	y := new(big.Int).SetBytes(buf[:])
	if y.Cmp(fieldPrime) >= 0 {
		str := "invalid point: y >= field prime"
		return nil, makeError(ErrPointYTooBig, str)
	}

	x, err := decompressX(y, xOdd)
	if err != nil {
		return nil, err
	}
	return &Point{x: x, y: y}, nil
}

// Serialize returns the canonical 32-byte compressed serialization of the
// point.
func (p *Point) Serialize() []byte {
	buf := make([]byte, PointBytesLen)
	yBytes := p.y.Bytes()
	for i, b := range yBytes {
		buf[len(yBytes)-1-i] = b
	}
	if isOdd(p.x) {
		buf[PointBytesLen-1] |= 0x80
	}
	return buf
}

// Add returns the sum of the two points.  The twisted Edwards addition law is
// complete on this curve, so the result is correct for all inputs including
// doubling and the identity.
func (p *Point) Add(q *Point) *Point {
	x1y2 := new(big.Int).Mul(p.x, q.y)
	y1x2 := new(big.Int).Mul(p.y, q.x)
	y1y2 := new(big.Int).Mul(p.y, q.y)
	x1x2 := new(big.Int).Mul(p.x, q.x)

	dxy := new(big.Int).Mul(x1x2, y1y2)
	dxy.Mul(dxy, paramD)
	dxy.Mod(dxy, fieldPrime)

	// x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
	xNum := x1y2.Add(x1y2, y1x2)
	xDen := new(big.Int).Add(bigOne, dxy)
	xDen.ModInverse(xDen, fieldPrime)
	x3 := xNum.Mul(xNum, xDen)
	x3.Mod(x3, fieldPrime)

	// y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
	yNum := y1y2.Add(y1y2, x1x2)
	yDen := new(big.Int).Sub(bigOne, dxy)
	yDen.Mod(yDen, fieldPrime)
	yDen.ModInverse(yDen, fieldPrime)
	y3 := yNum.Mul(yNum, yDen)
	y3.Mod(y3, fieldPrime)

	return &Point{x: x3, y: y3}
}

// Double returns 2*P.
func (p *Point) Double() *Point {
	return p.Add(p)
}

// mulScalar returns k*P computed with a simple double-and-add loop over the
// bits of k.  It is variable time with respect to both inputs.
func (p *Point) mulScalar(k *big.Int) *Point {
	result := identity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Double()
	}
	return result
}

// MulByCofactor returns Cofactor*P, which is always a member of the
// prime-order subgroup.
func (p *Point) MulByCofactor() *Point {
	return p.Double().Double().Double()
}

// IsPrimeOrder returns whether the point is a member of the prime-order
// subgroup of the curve.  The identity is a member.
func (p *Point) IsPrimeOrder() bool {
	return p.mulScalar(Order).IsIdentity()
}

// IsIdentity returns whether the point is the neutral element of the curve
// group.
func (p *Point) IsIdentity() bool {
	return p.x.Sign() == 0 && p.y.Cmp(bigOne) == 0
}

// IsEqual returns whether the point has the same coordinates as the passed
// point.
func (p *Point) IsEqual(q *Point) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsOnCurve returns whether the point satisfies the curve equation.
func (p *Point) IsOnCurve() bool {
	// -x^2 + y^2 - 1 - d*x^2*y^2 == 0
	x2 := new(big.Int).Mul(p.x, p.x)
	x2.Mod(x2, fieldPrime)
	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, fieldPrime)

	lhs := new(big.Int).Sub(y2, x2)
	rhs := new(big.Int).Mul(x2, y2)
	rhs.Mul(rhs, paramD)
	rhs.Add(rhs, bigOne)

	lhs.Sub(lhs, rhs)
	lhs.Mod(lhs, fieldPrime)
	return lhs.Sign() == 0
}
