// Command kzg is CLI glue around the kzg package: it generates an insecure
// SRS for testing and inspects SRS blobs. It is not part of the commitment
// core.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/LiveDuo/go-protodanksharding/kzg"
	"github.com/LiveDuo/go-protodanksharding/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kzg",
	Short: "kzg manages structured reference strings for the KZG commitment scheme",
}

var (
	fSize uint64
	fTau  string
)

var setupCmd = &cobra.Command{
	Use:   "setup [out.srs]",
	Short: "generates an insecure SRS from a supplied secret and writes it to a file",
	Long: `setup derives public parameters from the --tau secret and writes the
resulting SRS blob. The secret is discarded after derivation. Never use the
output in production; a real SRS comes from a trusted setup ceremony.`,
	Args: cobra.ExactArgs(1),
	RunE: cmdSetup,
}

var infoCmd = &cobra.Command{
	Use:   "info [file.srs]",
	Short: "prints the sizes of an SRS blob",
	Args:  cobra.ExactArgs(1),
	RunE:  cmdInfo,
}

func init() {
	setupCmd.Flags().Uint64Var(&fSize, "size", 4096, "number of evaluation points the SRS supports")
	setupCmd.Flags().StringVar(&fTau, "tau", "", "secret tau as a decimal string (required)")
	_ = setupCmd.MarkFlagRequired("tau")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(infoCmd)
}

func cmdSetup(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	tau, ok := new(big.Int).SetString(fTau, 10)
	if !ok {
		return fmt.Errorf("invalid tau %q", fTau)
	}

	domain, err := kzg.NewDomain(fSize)
	if err != nil {
		return err
	}

	pp, err := kzg.NewPublicParametersInsecure(domain, tau)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	written, err := pp.WriteTo(f)
	if err != nil {
		return err
	}

	log.Info().Str("path", args[0]).Int64("bytes", written).Uint64("size", domain.Cardinality).Msg("SRS written")
	return nil
}

func cmdInfo(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var pp kzg.PublicParameters
	read, err := pp.ReadFrom(f)
	if err != nil {
		return err
	}

	fmt.Printf("srs: %s\n", args[0])
	fmt.Printf("bytes: %d\n", read)
	fmt.Printf("max degree: %d\n", pp.CommitKey.MaxDegree())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
