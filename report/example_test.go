package report_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/circuits/report"
)

func ExampleFormatDuration() {
	fmt.Println(report.FormatDuration(12340 * time.Microsecond))
	fmt.Println(report.FormatDuration(42 * time.Second))
	fmt.Println(report.FormatDuration(61 * time.Second))
	// Output:
	// 12.34 ms
	// 42.00 s
	// 1.0 m 1.00 s
}
