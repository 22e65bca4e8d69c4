// SPDX-License-Identifier: EPL-2.0

// Package render draws signal figures.
//
// A Figure describes one chart: sampled (X, Y) data drawn as a line or as
// stairs, or a continuous function drawn over a domain. A Renderer
// consumes figures. Plotter writes each figure to an image file with
// gonum/plot, Recorder keeps them in memory and Discard drops them.
package render
