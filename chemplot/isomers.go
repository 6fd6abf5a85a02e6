/*
 * isomers.go, part of gonomen.
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

package chemplot

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Count is the number of isomers found for one carbon count.
type Count struct {
	Carbons int `json:"carbons"`
	Isomers int `json:"isomers"`
}

// Chart size.
const (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Atomi de carbon"
	p.Y.Label.Text = "Izomeri"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	return p
}

// IsomerCounts returns a bar chart with one bar per carbon count, in the
// order given.
func IsomerCounts(counts []Count, title string) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("chemplot: no counts to plot")
	}
	p := basicPlot(title)
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Isomers)
		names[i] = fmt.Sprintf("C%d", c.Carbons)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("chemplot: %w", err)
	}
	bars.Color = palette(0, len(counts))
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// SaveIsomerCounts draws the chart of counts to filename. The image format
// is taken from the file extension (png, svg, pdf...).
func SaveIsomerCounts(counts []Count, title, filename string) error {
	p, err := IsomerCounts(counts, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}

// WriteIsomerCounts draws the chart of counts to w in the given image
// format ("png", "svg"...).
func WriteIsomerCounts(w io.Writer, counts []Count, title, format string) error {
	p, err := IsomerCounts(counts, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
