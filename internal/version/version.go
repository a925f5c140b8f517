// ABOUTME: Build and product identification constants
// ABOUTME: Reported by the -version flag and in render summaries
package version

import "fmt"

const (
	// Version is the release version of the noise tools
	Version = "0.3.0"

	// Product is the product name shown in summaries
	Product = "Resonate Noise"

	// Manufacturer identifies the publisher
	Manufacturer = "Resonate"
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("%s %s (%s)", Product, Version, Manufacturer)
}
