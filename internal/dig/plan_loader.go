package dig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParsePlan reads a dig plan line by line. Blank lines are skipped; any
// malformed line fails the whole plan with its line number.
func ParsePlan(r io.Reader) ([]Instruction, error) {
	var plan []Instruction
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		instruction, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		plan = append(plan, instruction)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return plan, nil
}

// LoadPlanFromFile loads a dig plan from a text file.
func LoadPlanFromFile(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan file: %w", err)
	}
	defer f.Close()

	plan, err := ParsePlan(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}
	return plan, nil
}
