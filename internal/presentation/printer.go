package presentation

import (
	"fmt"
	"io"

	"assetcopy/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintBanner(plan domain.CopyPlan) {
	fmt.Fprintf(p.Writer, "Source: %s\n", plan.SourceDir)
	fmt.Fprintf(p.Writer, "Dest: %s\n", plan.DestDir)
}

func (p Printer) PrintResult(result domain.CopyResult) {
	pair := result.Item.Pair
	switch result.Status {
	case domain.StatusSuccess:
		fmt.Fprintf(p.Writer, "SUCCESS: Copied %s -> %s\n", pair.Source, pair.Dest)
		fmt.Fprintf(p.Writer, "Size: %d bytes\n", result.Size)
	case domain.StatusSourceMissing:
		fmt.Fprintln(p.Writer, missingLine(result.Item))
	default:
		fmt.Fprintf(p.Writer, "ERROR: Failed to copy %s -> %s: %v\n", pair.Source, pair.Dest, result.Err)
	}
}

func (p Printer) PrintListing(listing domain.Listing) {
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "Listing public directory content:")
	for _, entry := range listing.Entries {
		fmt.Fprintf(p.Writer, "%s - %d bytes\n", entry.Name, entry.Size)
	}
	if listing.Err != nil {
		fmt.Fprintf(p.Writer, "Error listing dir: %v\n", listing.Err)
	}
}

func (p Printer) PrintDryRun(plan domain.CopyPlan) {
	p.PrintBanner(plan)
	for _, item := range plan.Items {
		if plan.Probed && !item.SourceExists {
			fmt.Fprintln(p.Writer, missingLine(item))
			continue
		}
		fmt.Fprintf(p.Writer, "PLAN: Copy %s -> %s\n", item.Pair.Source, item.Pair.Dest)
	}
}

func missingLine(item domain.CopyItem) string {
	return fmt.Sprintf("ERROR: Source file not found: %s", item.SourcePath)
}
