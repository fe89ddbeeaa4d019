package domain

import "fmt"

// Gender is the SSA gender symbol attached to every name record.
type Gender string

const (
	Male   Gender = "M"
	Female Gender = "F"
)

// ParseGender validates an SSA gender symbol.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "M":
		return Male, nil
	case "F":
		return Female, nil
	default:
		return "", fmt.Errorf("gender must be M or F, got %q", s)
	}
}

// Record is one flattened row of the dataset: the number of babies registered
// under a name, gender, and year. The year comes from the enclosing archive
// entry, not the line itself.
type Record struct {
	Year   int
	Name   string
	Gender Gender
	Count  int
}
