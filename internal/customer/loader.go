package customer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a pipe-delimited customer file. Each line is:
//
//	first_name|last_name|email|password
//
// Blank lines are skipped. Emails are kept exactly as written.
func LoadFile(path string) ([]Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var customers []Customer
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s:%d: expected 4 fields, got %d", path, lineNo, len(fields))
		}
		if fields[2] == "" {
			return nil, fmt.Errorf("%s:%d: blank email", path, lineNo)
		}

		customers = append(customers, Customer{
			FirstName: fields[0],
			LastName:  fields[1],
			Email:     fields[2],
			Password:  fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
