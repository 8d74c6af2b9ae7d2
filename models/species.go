package models

type SpeciesChoice struct {
	Value string
	Label string
}

// SpeciesChoices are the suggested species offered on the lumber form.
// Storage accepts any species text.
var SpeciesChoices = []SpeciesChoice{
	// Hardwoods
	{"Red Oak", "Red Oak"},
	{"White Oak", "White Oak"},
	{"Maple", "Hard Maple"},
	{"Walnut", "Walnut"},
	{"Cherry", "Cherry"},
	{"Ash", "Ash"},
	{"Beech", "Beech"},
	{"Birch", "Birch"},
	{"Hickory", "Hickory"},
	{"Elm", "Elm"},
	{"Poplar", "Poplar"},
	{"Alder", "Alder"},
	{"Mahogany", "Mahogany"},
	{"Sapele", "Sapele"},
	{"Sycamore", "Sycamore"},
	// Softwoods
	{"Pine", "Pine"},
	{"Fir", "Fir"},
	{"Cedar", "Cedar"},
}
