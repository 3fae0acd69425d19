// Command ircat decodes an IR stream file and prints the messages to
// stdout, one "<timestamp>\t<text>" line per message.
//
// Diagnostics go to stderr through slog; decoded output is the only thing
// written to stdout so the tool composes in pipelines.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/logtide/irstream"
	"github.com/logtide/irstream/compress"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	var (
		compressionName string
		dumpMetadata    bool
	)

	rootCmd := &cobra.Command{
		Use:     "ircat <file>",
		Short:   "Decode an IR log stream file to text",
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			compressionType, err := compress.ParseCompressionType(compressionName)
			if err != nil {
				return err
			}

			return run(logger, args[0], compressionType, dumpMetadata)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&compressionName, "compression", "c", "none",
		"compression wrapping of the input file (none, zstd, s2, lz4)")
	rootCmd.Flags().BoolVarP(&dumpMetadata, "metadata", "m", false,
		"print the metadata blob to stderr before decoding")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("ircat failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, path string, compressionType compress.CompressionType, dumpMetadata bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stream, err := irstream.Open(f, compressionType)
	if err != nil {
		return fmt.Errorf("failed to open IR stream: %w", err)
	}

	logger.Info("opened IR stream",
		"file", path,
		"encoding", stream.Encoding(),
		"metadata_type", stream.MetadataType(),
		"metadata_size", len(stream.MetadataBytes()),
	)

	if dumpMetadata {
		fmt.Fprintf(os.Stderr, "%s\n", stream.MetadataBytes())
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	count := 0
	for msg := range stream.All() {
		fmt.Fprintf(out, "%d\t%s\n", msg.Timestamp, msg.Text)
		count++
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("decode failed after %d messages: %w", count, err)
	}

	logger.Info("decoded stream", "messages", count)

	return nil
}
