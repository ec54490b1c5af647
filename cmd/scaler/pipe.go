package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
)

var pipeFlags formatterFlags

func init() {
	addFormatterFlags(pipeCmd, &pipeFlags)
}

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Format a MessagePack stream of numbers from stdin",
	Long: `Read MessagePack-encoded numbers from stdin and write one formatted
line per value. Decoding and rendering run concurrently, so a slow
producer does not stall output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formatterFromFlags(cmd, &pipeFlags)
		if err != nil {
			return err
		}

		values := make(chan float64, 256)
		g, ctx := errgroup.WithContext(cmd.Context())

		g.Go(func() error {
			defer close(values)
			dec := msgpack.NewDecoder(os.Stdin)
			for {
				v, err := dec.DecodeFloat64()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("decode msgpack value: %w", err)
				}
				select {
				case values <- v:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})

		g.Go(func() error {
			out := cmd.OutOrStdout()
			for v := range values {
				if _, err := fmt.Fprintln(out, f.Format(v)); err != nil {
					return err
				}
			}
			return nil
		})

		return g.Wait()
	},
}
