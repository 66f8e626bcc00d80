package deck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseCard parses a command-line card spec of the form
// "name:copies[:min[:max]]", e.g. "Ash Blossom:3:1:3".
//
// Postcondition: returns a Card with a fresh ID and Min/Max set only when
// given, or an error.
func ParseCard(spec string) (Card, error) {
	fields := strings.Split(spec, ":")
	if len(fields) < 2 || len(fields) > 4 {
		return Card{}, fmt.Errorf("deck: card spec %q must be name:copies[:min[:max]]", spec)
	}
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return Card{}, fmt.Errorf("deck: card spec %q has an empty name", spec)
	}
	nums := make([]int, 0, 3)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Card{}, fmt.Errorf("deck: invalid number in card spec %q: %w", spec, err)
		}
		nums = append(nums, n)
	}
	c := Card{ID: uuid.New().String(), Name: name, Copies: nums[0]}
	if len(nums) > 1 {
		c.Min = &nums[1]
	}
	if len(nums) > 2 {
		c.Max = &nums[2]
	}
	return c, nil
}
