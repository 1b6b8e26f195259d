// Package figure composes a data/simulation comparison figure from a
// loaded dataset.
//
// A Figure moves through a fixed sequence: it is created around a dataset
// (Loaded), may be normalized once (Normalized), is then drawn (Drawn), and
// finally accepts any number of fixed-position text annotations. All
// configuration calls must precede Draw; annotation calls must follow it.
// Drawing twice recomputes the figure in place from the dataset's current
// state and replaces the previous canvas.
//
// The drawn figure exposes its canvas, legend, and main region so callers
// can add custom decorations before exporting with Print.
package figure
