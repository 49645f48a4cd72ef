package testcases

// Lines which miss the rectangle.  No clip polygon exists.
var illegalCases = []TestCase{
	{
		Name:   "outside_right",
		X:      500,
		Alpha:  deg(45),
		Width:  200,
		Height: 200,
	},
	{
		Name:   "outside_above",
		Y:      -400,
		Alpha:  deg(10),
		Width:  200,
		Height: 200,
	},
	{
		Name:   "outside_horizontal",
		Y:      -200,
		Alpha:  0,
		Width:  200,
		Height: 200,
	},
}
