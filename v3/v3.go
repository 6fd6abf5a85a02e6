/*
 * v3.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix is a set of vectors in 3D space. Within the package it is understood
// that a "vector" is a row, i.e. the cartesian coordinates of a point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
// A Matrix with zero vectors is valid and has a nil Dense.
func Zeros(vecs int) *Matrix {
	if vecs == 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NewMatrix returns a Matrix with 3 columns from data, which is used as the
// backing slice.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	if l == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// FromVecs returns a new Matrix with one row per vector.
func FromVecs(vecs []r3.Vec) *Matrix {
	m := Zeros(len(vecs))
	for i, v := range vecs {
		m.SetVec(i, v)
	}
	return m
}

// NVecs return the number of (row) vectors in F.
func (F *Matrix) NVecs() int {
	if F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(PanicMsg("v3: Matrix must have 3 columns"))
	}
	return r
}

// Vec returns the ith vector as an r3.Vec.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// VecView returns a view of the ith vector of F. Changes to
// the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// Centroid returns the geometric center of the vectors in F.
// It panics if F is empty.
func (F *Matrix) Centroid() r3.Vec {
	n := F.NVecs()
	if n == 0 {
		panic(PanicMsg("v3: centroid of an empty Matrix"))
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1 / float64(n)
	}
	var c mat.VecDense
	c.MulVec(F.Dense.T(), mat.NewVecDense(n, ones))
	return r3.Vec{X: c.AtVec(0), Y: c.AtVec(1), Z: c.AtVec(2)}
}

// Translate adds disp to every vector in F.
func (F *Matrix) Translate(disp r3.Vec) {
	for i := 0; i < F.NVecs(); i++ {
		F.SetVec(i, r3.Add(F.Vec(i), disp))
	}
}

// Dist returns the distance between the vectors i and j of F.
func (F *Matrix) Dist(i, j int) float64 {
	return r3.Norm(r3.Sub(F.Vec(i), F.Vec(j)))
}

// String returns a one-vector-per-line representation of F.
func (F *Matrix) String() string {
	if F.NVecs() == 0 {
		return "[]"
	}
	return fmt.Sprintf("%.4f", mat.Formatted(F.Dense, mat.Squeeze()))
}

// Error is the error type of the v3 package.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
