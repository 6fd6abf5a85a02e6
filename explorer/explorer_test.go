/*
 * explorer_test.go, part of gonomen.
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

package explorer

import (
	"errors"
	"testing"

	"github.com/chimie3d/gonomen/internal/logging"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/chimie3d/gonomen/iupac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSearchErrors(Te *testing.T) {
	E := New()
	for _, q := range []string{"", "   \t"} {
		_, err := E.Search(q)
		assert.ErrorIs(Te, err, ErrEmptyQuery)
	}
	_, err := E.Search("xyz")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, iupac.ErrUnresolvableChainLength))
	assert.Equal(Te, iupac.ChainLengthMessage, err.Error())
}

func TestSearch(Te *testing.T) {
	tests := []struct {
		query   string
		source  Source
		key     string
		name    string
		formula string
		kind    isomer.Kind
		isomers []string
	}{
		{"benzen", FromCatalog, "benzene", "Benzen", "C₆H₆", isomer.Single, []string{"Benzen"}},
		{"Ethanol", FromCatalog, "ethanol", "Etanol", "C₂H₆O", isomer.Functional, []string{"Etanol (alcool etilic)", "Dimetil eter"}},
		{"hexane", FromCatalog, "hexane", "Hexan", "C₆H₁₄", isomer.Single, []string{
			"Hexan", "2-metil-pentan", "3-metil-pentan", "2,2-dimetil-butan", "2,3-dimetil-butan",
		}},
		{"apă", FromCatalog, "water", "Apă", "H₂O", isomer.Single, nil},
		{"2-metilbutan", FromName, "", "2-metil-butan", "C₅H₁₂", isomer.Chain, []string{
			"2-metil-butan", "pentan", "2,2-dimetil-propan",
		}},
		{" propan ", FromName, "", "propan", "C₃H₈", isomer.Single, nil},
		{"cis-but-2-ena", FromName, "", "cis-but-2-enă", "C₄H₈", isomer.Geometric, []string{
			"cis-but-2-enă", "but-1-enă", "trans-but-2-enă",
		}},
	}
	E := New()
	for _, tt := range tests {
		Te.Run(tt.query, func(t *testing.T) {
			r, err := E.Search(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.source, r.Source)
			assert.Equal(t, tt.key, r.Key)
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.formula, r.Formula)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Positive(t, r.MolarMass)
			assert.NotEmpty(t, r.Description)
			assert.NoError(t, r.Structure.Corrupted())
			if tt.isomers == nil {
				assert.Nil(t, r.Isomers)
			} else {
				require.NotNil(t, r.Isomers)
				assert.ElementsMatch(t, tt.isomers, r.Isomers.Names())
				assert.Equal(t, tt.isomers[0], r.Isomers.Records[0].Name)
				assert.Equal(t, r.Formula, r.Isomers.Formula)
			}
			if tt.source == FromName {
				require.NotNil(t, r.Parsed)
			}
		})
	}
	r, err := E.Search("hexan")
	require.NoError(Te, err)
	assert.InDelta(Te, 86.18, r.MolarMass, 0.01)
}

func TestSearchOptions(Te *testing.T) {
	E := New(WithCatalog(nil), WithGenerator(isomer.NewGenerator(2, 0)))
	r, err := E.Search("benzen")
	require.Error(Te, err, "without a catalog, benzen has no chain")
	assert.Nil(Te, r)

	r, err = E.Search("hexan")
	require.NoError(Te, err)
	assert.Equal(Te, 2, r.Isomers.Len())
}

func TestSearchLogs(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	E := New(WithLogger(logging.FromCore(core)))
	_, err := E.Search("benzen")
	require.NoError(Te, err)
	_, err = E.Search("xyz")
	require.Error(Te, err)

	hits := logs.FilterMessage("catalog hit").All()
	require.Len(Te, hits, 1)
	assert.Equal(Te, "benzene", hits[0].ContextMap()["key"])
	assert.Equal(Te, "benzen", hits[0].ContextMap()["query"])
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(Te, warns, 1)
	assert.Equal(Te, "xyz", warns[0].ContextMap()["query"])
}

func TestSession(Te *testing.T) {
	S := New().NewSession()
	assert.Nil(Te, S.Current())
	_, err := S.OpenIsomer(0)
	assert.ErrorIs(Te, err, ErrIsomerIndex)
	_, err = S.Back()
	assert.ErrorIs(Te, err, ErrNoParent)

	root, err := S.Show("butan-2-ol")
	require.NoError(Te, err)
	assert.Same(Te, root, S.Current())
	assert.Nil(Te, S.Parent())

	iso, err := S.OpenIsomer(1)
	require.NoError(Te, err)
	assert.Equal(Te, "butan-1-ol", iso.Name)
	assert.Equal(Te, FromIsomer, iso.Source)
	assert.Equal(Te, isomer.Position, iso.Kind)
	assert.Equal(Te, "C₄H₁₀O", iso.Formula)
	require.NotNil(Te, iso.Parsed)
	assert.Equal(Te, 1, iso.Parsed.Alcohol)
	assert.Same(Te, root, S.Parent())
	assert.Same(Te, root.Isomers, iso.Isomers)

	ether, err := S.OpenIsomer(root.Isomers.Len() - 1)
	require.NoError(Te, err)
	assert.Equal(Te, "dietil eter", ether.Name)
	assert.Nil(Te, ether.Parsed)
	assert.Same(Te, root, S.Parent(), "the parent stays while siblings are opened")

	_, err = S.OpenIsomer(root.Isomers.Len())
	assert.ErrorIs(Te, err, ErrIsomerIndex)
	assert.Same(Te, ether, S.Current())

	back, err := S.Back()
	require.NoError(Te, err)
	assert.Same(Te, root, back)
	assert.Nil(Te, S.Parent())
	_, err = S.Back()
	assert.ErrorIs(Te, err, ErrNoParent)

	_, err = S.Show("xyz")
	require.Error(Te, err)
	assert.Same(Te, root, S.Current())
}

func TestSessionCatalog(Te *testing.T) {
	S := New().NewSession()
	_, err := S.Show("ciclopropan")
	require.NoError(Te, err)
	iso, err := S.OpenIsomer(1)
	require.NoError(Te, err)
	assert.Equal(Te, "Propenă", iso.Name)
	assert.Equal(Te, "propene", iso.Key)
	assert.Equal(Te, "C₃H₆", iso.Formula)
	_, err = S.Show("propan")
	require.NoError(Te, err)
	assert.Nil(Te, S.Parent())
	_, err = S.OpenIsomer(0)
	assert.ErrorIs(Te, err, ErrIsomerIndex)
}
