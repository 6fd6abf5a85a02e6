/*
 * v3_test.go, part of gonomen.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	m, err := NewMatrix([]float64{0, 0, 0, 2, 0, 0, 1, 3, 0})
	require.NoError(Te, err)
	assert.Equal(Te, 3, m.NVecs())
	assert.Equal(Te, r3.Vec{X: 2}, m.Vec(1))

	_, err = NewMatrix([]float64{1, 2})
	require.Error(Te, err)

	empty, err := NewMatrix(nil)
	require.NoError(Te, err)
	assert.Equal(Te, 0, empty.NVecs())
}

func TestCentroidAndTranslate(Te *testing.T) {
	m := FromVecs([]r3.Vec{{X: 0}, {X: 2}, {X: 1, Y: 3}})
	c := m.Centroid()
	assert.InDelta(Te, 1.0, c.X, 1e-12)
	assert.InDelta(Te, 1.0, c.Y, 1e-12)
	assert.InDelta(Te, 0.0, c.Z, 1e-12)

	m.Translate(r3.Scale(-1, c))
	c = m.Centroid()
	assert.InDelta(Te, 0.0, r3.Norm(c), 1e-12)
	assert.InDelta(Te, 2.0, m.Dist(0, 1), 1e-12)
}

func TestVecView(Te *testing.T) {
	m := Zeros(2)
	v := m.VecView(1)
	v.SetVec(0, r3.Vec{X: 1, Y: 2, Z: 3})
	assert.Equal(Te, r3.Vec{X: 1, Y: 2, Z: 3}, m.Vec(1))
	assert.Panics(Te, func() { Zeros(0).Centroid() })
}
