// Command pdfmerge concatenates PDF files found in a directory into a
// single document. With ten or fewer files it lists them and asks which to
// merge; with more it merges everything without prompting.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/pflag"
)

func main() {
	dir := pflag.StringP("path", "p", "", "Directory containing the PDF files (default: current directory)")
	out := pflag.StringP("output", "o", "", "Output file name (default: merged_pdfs.pdf, auto-incremented)")
	all := pflag.Bool("all", false, "Merge every PDF without prompting")
	pflag.Parse()

	searchDir := *dir
	if searchDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "current directory: %v\n", err)
			os.Exit(1)
		}
		searchDir = wd
	}

	info, err := os.Stat(searchDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "not a directory: %s\n", searchDir)
		os.Exit(1)
	}

	fmt.Printf("Searching for PDF files in: %s\n", searchDir)

	pdfs, err := findPDFs(searchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan directory: %v\n", err)
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		fmt.Println("No PDF files found.")
		return
	}
	fmt.Printf("Found %d PDF files\n", len(pdfs))

	selected := pdfs
	if !*all && len(pdfs) <= 10 {
		selected, err = selectPDFs(pdfs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if selected == nil {
			fmt.Println("Operation cancelled.")
			return
		}
	} else if len(pdfs) > 10 {
		fmt.Println("More than 10 files, merging all of them.")
	}

	outPath := *out
	if outPath == "" {
		outPath = uniqueOutputPath(searchDir)
	} else if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(searchDir, outPath)
	}

	fmt.Printf("Merging %d PDF files...\n", len(selected))
	for _, p := range selected {
		fmt.Printf("  adding %s\n", filepath.Base(p))
	}

	if err := api.MergeCreateFile(selected, outPath, false, nil); err != nil {
		fmt.Fprintf(os.Stderr, "merge: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Merged PDF saved as: %s\n", outPath)
}

// findPDFs returns the sorted absolute paths of all PDFs directly inside
// dir.
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// selectPDFs shows a numbered list and reads a space-separated selection
// from stdin. "all" selects everything; an empty line cancels (nil).
func selectPDFs(pdfs []string) ([]string, error) {
	fmt.Println("\nFound PDF files:")
	for i, p := range pdfs {
		fmt.Printf("  %d. %s\n", i+1, filepath.Base(p))
	}
	fmt.Println("\nEnter numbers separated by spaces (e.g. '1 3 5'), 'all', or press Enter to cancel")

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("Your selection: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("input cancelled")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil, nil
		}
		if strings.EqualFold(line, "all") {
			return pdfs, nil
		}

		var selected []string
		valid := true
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil || n < 1 || n > len(pdfs) {
				fmt.Printf("Invalid number %q: enter values between 1 and %d\n", field, len(pdfs))
				valid = false
				break
			}
			selected = append(selected, pdfs[n-1])
		}
		if valid {
			return selected, nil
		}
	}
}

// uniqueOutputPath picks merged_pdfs.pdf inside dir, appending a counter
// while the name is taken.
func uniqueOutputPath(dir string) string {
	path := filepath.Join(dir, "merged_pdfs.pdf")
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("merged_pdfs_%d.pdf", counter))
	}
}
