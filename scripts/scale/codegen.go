package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type scale struct {
	Index int
	Name  string
	Power int
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "scale", "scale_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of scale objects
	scales, err := convertDataToScales(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the scale objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "scale", "scale_data.tmpl"), scales)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("scale_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToScales(data [][]string) ([]scale, error) {
	scales := make([]scale, 0, len(data))
	for _, rec := range data {
		index, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", rec[0], err)
		}
		power, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("power %q: %w", rec[2], err)
		}
		if power != 3*index {
			return nil, fmt.Errorf("%q: power %v does not match index %v", rec[1], power, index)
		}
		scales = append(scales, scale{Index: index, Name: rec[1], Power: power})
	}

	// Sort by index and make sure there are no gaps
	sort.Slice(scales, func(i, j int) bool {
		return scales[i].Index < scales[j].Index
	})
	for i, s := range scales {
		if s.Index != i {
			return nil, fmt.Errorf("missing scale with index %v", i)
		}
	}
	return scales, nil
}

func generateGoCode(filename string, scales []scale) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, scales)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
