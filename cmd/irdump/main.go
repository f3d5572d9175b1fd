// Copyright 2024 The irsdk Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/racewire/irsdk"
	"github.com/spf13/cobra"
)

var (
	channels []string
	wait     bool
	timeout  time.Duration
)

func prettyPrint(v interface{}) string {
	buf, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		log.Printf("JSON encode error: %v", err)
		return fmt.Sprintf("%+v", v)
	}
	return string(buf)
}

func runLive(cmd *cobra.Command, args []string) error {
	conn, err := irsdk.Open(nil)
	if err != nil {
		return fmt.Errorf("opening connection: %w", err)
	}
	defer conn.Close()

	var snap *irsdk.Snapshot
	if wait {
		snap, err = conn.Blocking().Sample(timeout)
	} else {
		snap, err = conn.LatestSnapshot()
	}
	if err != nil {
		return fmt.Errorf("taking snapshot: %w", err)
	}

	if len(channels) == 0 {
		entries, err := snap.Enumerate()
		if err != nil {
			return fmt.Errorf("enumerating channels: %w", err)
		}
		fmt.Println(prettyPrint(entries))
		return nil
	}

	out := make(map[string]irsdk.Value, len(channels))
	for _, name := range channels {
		val, err := snap.Get(name)
		if err != nil {
			return fmt.Errorf("reading channel %q: %w", name, err)
		}
		out[name] = val
	}
	fmt.Println(prettyPrint(out))
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening replay file: %w", err)
	}
	defer f.Close()

	header, err := irsdk.ParseReplayHeader(f)
	if err != nil {
		return fmt.Errorf("parsing replay header: %w", err)
	}
	fmt.Println(prettyPrint(header))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "irdump",
		Short: "A read-only client for iRacing's telemetry shared-memory interface",
		Long:  "irdump dumps a live telemetry snapshot or a replay file's header as JSON.",
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Dump a live telemetry snapshot",
		RunE:  runLive,
	}
	liveCmd.Flags().StringArrayVar(&channels, "channel", nil, "channel name to read (repeatable); dumps every channel if omitted")
	liveCmd.Flags().BoolVar(&wait, "wait", false, "block on the wake event before sampling")
	liveCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "wait timeout, used with --wait")

	replayCmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Dump a replay file's header",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}

	rootCmd.AddCommand(liveCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
