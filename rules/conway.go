package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// InBounds reports whether a neighbor coordinate may be counted on a width x height grid.
// The upper bound is inclusive: the column at x == width and the row at y == height are
// queried too. Nothing ever lives there, so they always read as dead.
func InBounds(nx, ny, width, height int) bool {
	return nx >= 0 && nx <= width && ny >= 0 && ny <= height
}
