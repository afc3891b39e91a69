// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figs

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/plot"
	"cogentcore.org/core/plot/plots"
)

func Example() {
	logx.UserLevel = slog.LevelWarn // keep the example output deterministic

	fg := New("paper").SetBasePath(filepath.Join(os.TempDir(), "figs-example"))

	data := make(plot.XYs, 21)
	for i := range data {
		data[i].X = float32(i) * 5
		data[i].Y = 50 + 40*math32.Sin((float32(i)/8)*math32.Pi)
	}

	plt := fg.NewPlot()
	plt.Title.Text = "Sine"
	plt.Add(errors.Log1(plots.NewLine(data)))

	fg.QH()
	fg.Save("sine")
	// Output:
}
