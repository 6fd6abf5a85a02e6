/*
 * normalize_test.go, part of gonomen.
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

package iupac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(Te *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"but-1-enă", "but-1-ena"},
		{"  HEXAN ", "hexan"},
		{"Ăâîșț", "aaist"},
		{"şţ", "st"},
		{"2,3 - dimetil hexan", "2,3-dimetilhexan"},
		{"", ""},
	}
	for _, tt := range tests {
		Te.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
