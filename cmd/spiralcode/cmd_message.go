package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	spiralcode "github.com/ppipada/spiralcode-go"
	"github.com/ppipada/spiralcode-go/gridsize"
	"github.com/ppipada/spiralcode-go/linefile"
	"github.com/ppipada/spiralcode-go/spiralerrors"
)

var gridSize int

// encodeCmd encodes one message given on the command line
var encodeCmd = &cobra.Command{
	Use:   "encode [message]",
	Short: "Encode a message",
	Long: `Encodes a message typed on the command line. Arguments are joined with
single spaces and uppercased.

Example:
  spiralcode encode hello world
  spiralcode encode --size 9 "meet at noon"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

// decodeCmd decodes one encoded string
var decodeCmd = &cobra.Command{
	Use:   "decode [encoded]",
	Short: "Decode an encoded message",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

// sizeCmd reports the grid a message length needs
var sizeCmd = &cobra.Command{
	Use:   "size [length]",
	Short: "Show the grid size needed for a message length",
	Args:  cobra.ExactArgs(1),
	RunE:  runSize,
}

func runEncode(cmd *cobra.Command, args []string) error {
	message := linefile.Normalize(strings.Join(args, " "))

	size := gridSize
	if !cmd.Flags().Changed("size") {
		size = currentConfig().Grid.Size
	}

	codec, err := newCodec()
	if err != nil {
		return err
	}
	encoded, err := codec.EncodeWithSize(message, size)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	decoded, err := codec.Decode(linefile.Normalize(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), decoded)
	return nil
}

func runSize(cmd *cobra.Command, args []string) error {
	length, err := strconv.Atoi(args[0])
	if err != nil || length < 0 {
		return fmt.Errorf("invalid message length %q", args[0])
	}
	if length < spiralcode.MinMessageLength {
		return &spiralerrors.EmptyInputError{Length: length, Min: spiralcode.MinMessageLength}
	}
	n, err := gridsize.MinimumSizeFor(length)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "message length: %d\ngrid size: %dx%d\ncapacity: %d\nencoded length: %d\n",
		length, n, n, gridsize.Capacity(n), n*n)
	return nil
}
