package melon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// LoadFile reads a pipe-delimited melon file and returns the records in file
// order. Each line is:
//
//	melon_id|common_name|price|image_url|flesh_color|rind_color|seedless[|tags]
//
// tags is an optional comma-separated list. Blank lines are skipped.
func LoadFile(path string) ([]Melon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var melons []Melon
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		melons = append(melons, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return melons, nil
}

func parseLine(line string) (Melon, error) {
	fields := strings.Split(line, "|")
	if len(fields) < 7 {
		return Melon{}, fmt.Errorf("expected at least 7 fields, got %d", len(fields))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return Melon{}, fmt.Errorf("bad price %q: %w", fields[2], err)
	}
	if price.IsNegative() {
		return Melon{}, fmt.Errorf("negative price %q", fields[2])
	}

	m := Melon{
		ID:         strings.TrimSpace(fields[0]),
		CommonName: strings.TrimSpace(fields[1]),
		Price:      price,
		ImageURL:   strings.TrimSpace(fields[3]),
		FleshColor: strings.TrimSpace(fields[4]),
		RindColor:  strings.TrimSpace(fields[5]),
		Seedless:   parseBool(fields[6]),
	}
	if m.ID == "" {
		return Melon{}, fmt.Errorf("blank melon id")
	}

	if len(fields) > 7 {
		for _, tag := range strings.Split(fields[7], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				m.Tags = append(m.Tags, tag)
			}
		}
	}

	return m, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
