// Package main provides the entry point for the VTOP transcript agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vtop_agent",
	Short: "VTOP transcript parser and offline academic planner",
	Long:  "vtop_agent turns the raw transcript exported by the VTOP CLI into structured JSON and runs offline planning features (attendance buffers, grade scenarios, CGPA what-ifs, performance trends) over it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
