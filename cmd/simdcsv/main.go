// Command simdcsv prints the structural rows and fields found in a
// CSV file, without decoding or unescaping field contents.
package main

import (
	"fmt"
	"os"

	"github.com/friendlymatthew/simdcsv"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: simdcsv <path>")
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, "simdcsv:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := simdcsv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return err
	}

	data := r.Bytes()
	for i, row := range rows {
		fmt.Printf("row %d (%d fields):\n", i, len(row))
		for j, field := range row {
			fmt.Printf("  [%d] %q\n", j, data[field.Start:field.End])
		}
	}
	fmt.Printf("total rows: %d\n", len(rows))

	return nil
}
