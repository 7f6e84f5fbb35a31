package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regionpart/pipeline"
	"github.com/katalvlaran/regionpart/regionio"
)

func newPartitionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Partition a graph into regions and write a region file",
		RunE:  runPartition,
	}

	cmd.Flags().String("vertices", "", "path to the vertex file (required)")
	cmd.Flags().String("edges", "", "path to the edge file (optional)")
	cmd.Flags().String("format", "csv", `input format: "csv" or "txt" (legacy whitespace counts-prefixed format)`)
	cmd.Flags().Int("max-accumulation", 0, "leaf capacity threshold (required, positive)")
	cmd.Flags().String("out", "", "path to write the region file (required)")
	cmd.Flags().String("shard-dir", "", "optional directory to also write per-region shard files (see regionio.WriteShardFiles)")
	cmd.Flags().String("group-out", "", "optional path to write a second-level region grouping (see regionio.GroupRegions)")
	cmd.Flags().Int("group-max-accumulation", 0, "superregion capacity for --group-out (defaults to --max-accumulation if unset)")
	_ = cmd.MarkFlagRequired("vertices")
	_ = cmd.MarkFlagRequired("max-accumulation")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runPartition(cmd *cobra.Command, args []string) error {
	v, err := bindConfig(cmd)
	if err != nil {
		return err
	}

	maxAccumulation, err := maxAccumulationFromConfig(v)
	if err != nil {
		return err
	}

	vertexPath := v.GetString("vertices")
	edgePath := v.GetString("edges")
	format := v.GetString("format")
	outPath := v.GetString("out")
	shardDir := v.GetString("shard-dir")
	groupOut := v.GetString("group-out")
	groupMaxAccumulation := v.GetInt("group-max-accumulation")
	if groupMaxAccumulation <= 0 {
		groupMaxAccumulation = maxAccumulation
	}

	g, err := openGraph(vertexPath, edgePath, format)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(g, pipeline.Config{MaxAccumulation: maxAccumulation}, log)
	if err != nil {
		return fmt.Errorf("regionpart: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("regionpart: create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := regionio.WriteRegions(out, result.Regions); err != nil {
		return fmt.Errorf("regionpart: %w", err)
	}

	if shardDir != "" {
		if err := regionio.WriteShardFiles(shardDir, result.Regions); err != nil {
			return fmt.Errorf("regionpart: %w", err)
		}
	}

	if groupOut != "" {
		superregions, err := regionio.GroupRegions(result.Regions, groupMaxAccumulation)
		if err != nil {
			return fmt.Errorf("regionpart: group regions: %w", err)
		}
		if err := writeGroups(groupOut, superregions); err != nil {
			return fmt.Errorf("regionpart: %w", err)
		}
	}

	log.WithFields(map[string]interface{}{
		"regions": len(result.Regions),
		"leaves":  result.LeafCount,
	}).Info("partition written")

	return nil
}

// writeGroups writes one line per superregion: its member region ids,
// space-separated, matching regiongrouper.py's output format.
func writeGroups(path string, groups [][]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	for _, group := range groups {
		for i, id := range group {
			if i > 0 {
				if _, err := fmt.Fprint(f, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(f, "%d", id); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(f); err != nil {
			return err
		}
	}

	return nil
}
