package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regionpart/regionio"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Re-check a region file's partition completeness and region connectivity",
		RunE:  runValidate,
	}

	cmd.Flags().String("vertices", "", "path to the vertex file used to produce --regions (required)")
	cmd.Flags().String("edges", "", "path to the edge file (optional)")
	cmd.Flags().String("format", "csv", `input format: "csv" or "txt"`)
	cmd.Flags().String("regions", "", "path to the region file to validate (required)")
	_ = cmd.MarkFlagRequired("vertices")
	_ = cmd.MarkFlagRequired("regions")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	v, err := bindConfig(cmd)
	if err != nil {
		return err
	}

	g, err := openGraph(v.GetString("vertices"), v.GetString("edges"), v.GetString("format"))
	if err != nil {
		return err
	}

	regionsPath := v.GetString("regions")
	rf, err := os.Open(regionsPath)
	if err != nil {
		return fmt.Errorf("regionpart: open %s: %w", regionsPath, err)
	}
	defer rf.Close()

	regions, err := regionio.ReadRegions(rf, g)
	if err != nil {
		return fmt.Errorf("regionpart: %w", err)
	}

	if err := regionio.ValidatePartition(g, regions); err != nil {
		return fmt.Errorf("regionpart: validation failed: %w", err)
	}

	log.WithField("regions", len(regions)).Info("partition is valid: complete and every region is connected")
	fmt.Println("OK")

	return nil
}
