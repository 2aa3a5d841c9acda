package players

import (
	"fmt"
	"strings"
)

func charsUnique(s string) bool {
	seen := map[string]bool{}
	for _, c := range s {
		if _, ok := seen[string(c)]; ok {
			return false
		}
		seen[string(c)] = true
	}
	return true
}

func charsInRange(chars string, lower, upper int) bool {
	for _, char := range chars {
		if int(char) < lower || int(char) > upper {
			return false
		}
	}
	return true
}

// lettersToIndices converts a choice like "ACF" into card indices.
// An empty choice selects nothing.
func lettersToIndices(input string, numCards int) ([]int, error) {
	choice := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	if choice == "" {
		return []int{}, nil
	}

	if !charsInRange(choice, upperCaseA, upperCaseA+numCards-1) {
		return nil, fmt.Errorf("%w: use the letter codes (A-%c) to select your cards", ErrInvalidInput, rune(upperCaseA+numCards-1))
	}
	if !charsUnique(choice) {
		return nil, fmt.Errorf("%w: select each card once", ErrInvalidInput)
	}

	indices := []int{}
	for _, char := range choice {
		indices = append(indices, int(char)-upperCaseA)
	}
	return indices, nil
}

func parseYesNo(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: please enter \"y\" for \"yes\" or \"n\" for \"no\"", ErrInvalidInput)
}
