// Command peerdascli exercises the PeerDAS KZG library from the shell:
// committing a blob, computing its cells and proofs, batch-verifying
// cells against a commitment, and recovering a full blob from a
// partial cell set. It is a development and interop-testing tool, not
// a production service.
//
// Usage:
//
//	peerdascli commit   --blob <path>
//	peerdascli cells     --blob <path> --out <dir>
//	peerdascli verify    --commitment <hex> --cell <path> --index <n> --proof <hex>
//	peerdascli recover   --out <dir> [--cell <path> --index <n>]...
//
// All subcommands require --setup pointing at a trusted setup JSON
// document; it defaults to $PEERDAS_SETUP_PATH.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/log"
	"github.com/jtraglia/peerdas-kzg/peerdas"
)

var logger = log.Default().For(log.ComponentCLI)

func main() {
	app := &cli.App{
		Name:  "peerdascli",
		Usage: "commit, prove, verify, and recover PeerDAS blob cells",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "setup",
				Usage:   "path to the trusted setup JSON document",
				EnvVars: []string{"PEERDAS_SETUP_PATH"},
			},
		},
		Commands: []*cli.Command{
			commitCommand,
			cellsCommand,
			verifyCommand,
			recoverCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var commitCommand = &cli.Command{
	Name:  "commit",
	Usage: "compute the KZG commitment of a blob",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "blob", Required: true, Usage: "path to the raw blob bytes"},
	},
	Action: func(c *cli.Context) error {
		setup, err := loadSetup(c)
		if err != nil {
			return err
		}
		blob, err := loadBlob(c.String("blob"))
		if err != nil {
			return err
		}

		pc := peerdas.NewProverContext(setup)
		commitment, err := pc.BlobToKZGCommitment(blob)
		if err != nil {
			return err
		}
		logger.Debug("committed blob", log.HexAttr("commitment", commitment[:]))
		fmt.Println(hex.EncodeToString(commitment[:]))
		return nil
	},
}

var cellsCommand = &cli.Command{
	Name:  "cells",
	Usage: "compute all cells and KZG proofs for a blob",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "blob", Required: true, Usage: "path to the raw blob bytes"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "directory to write cell_<k>.bin and proof_<k>.bin into"},
	},
	Action: func(c *cli.Context) error {
		setup, err := loadSetup(c)
		if err != nil {
			return err
		}
		blob, err := loadBlob(c.String("blob"))
		if err != nil {
			return err
		}

		pc := peerdas.NewProverContext(setup)
		cells, proofs, err := pc.ComputeCellsAndKZGProofs(blob)
		if err != nil {
			return err
		}

		outDir := c.String("out")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		for k := 0; k < peerdas.CellsPerExtBlob; k++ {
			if err := os.WriteFile(filepath.Join(outDir, fmt.Sprintf("cell_%d.bin", k)), cells[k][:], 0o644); err != nil {
				return fmt.Errorf("writing cell %d: %w", k, err)
			}
			if err := os.WriteFile(filepath.Join(outDir, fmt.Sprintf("proof_%d.bin", k)), proofs[k][:], 0o644); err != nil {
				return fmt.Errorf("writing proof %d: %w", k, err)
			}
		}
		logger.Info("wrote cells and proofs", "count", peerdas.CellsPerExtBlob, "dir", outDir)
		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "batch-verify one or more cells against their commitments",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "commitment", Required: true, Usage: "hex-encoded commitment, one per cell (repeatable)"},
		&cli.IntSliceFlag{Name: "index", Required: true, Usage: "cell index within its blob (repeatable)"},
		&cli.StringSliceFlag{Name: "cell", Required: true, Usage: "path to a cell's raw bytes (repeatable)"},
		&cli.StringSliceFlag{Name: "proof", Required: true, Usage: "hex-encoded proof, one per cell (repeatable)"},
	},
	Action: func(c *cli.Context) error {
		setup, err := loadSetup(c)
		if err != nil {
			return err
		}

		commitmentHexes := c.StringSlice("commitment")
		indices := c.IntSlice("index")
		cellPaths := c.StringSlice("cell")
		proofHexes := c.StringSlice("proof")

		n := len(cellPaths)
		if len(commitmentHexes) != n || len(indices) != n || len(proofHexes) != n {
			return fmt.Errorf("commitment, index, cell, and proof flags must repeat the same number of times")
		}

		commitments := make([]*peerdas.Commitment, n)
		cellIndices := make([]uint64, n)
		cells := make([]*peerdas.Cell, n)
		proofs := make([]*peerdas.Proof, n)

		for i := 0; i < n; i++ {
			commitment, err := decodeCommitment(commitmentHexes[i])
			if err != nil {
				return fmt.Errorf("commitment %d: %w", i, err)
			}
			commitments[i] = commitment

			cell, err := loadCell(cellPaths[i])
			if err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
			cells[i] = cell

			proof, err := decodeProof(proofHexes[i])
			if err != nil {
				return fmt.Errorf("proof %d: %w", i, err)
			}
			proofs[i] = proof

			cellIndices[i] = uint64(indices[i])
		}

		vc := peerdas.NewVerifierContext(setup)
		ok, err := vc.VerifyCellKZGProofBatch(commitments, cellIndices, cells, proofs)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("valid")
			return nil
		}
		logger.Warn("cell batch failed verification", "cells", n)
		fmt.Println("invalid")
		os.Exit(1)
		return nil
	},
}

var recoverCommand = &cli.Command{
	Name:  "recover",
	Usage: "recover all 128 cells and proofs from a partial set",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{Name: "index", Required: true, Usage: "cell index, one per supplied cell (repeatable)"},
		&cli.StringSliceFlag{Name: "cell", Required: true, Usage: "path to a cell's raw bytes (repeatable)"},
		&cli.StringFlag{Name: "out", Required: true, Usage: "directory to write cell_<k>.bin and proof_<k>.bin into"},
	},
	Action: func(c *cli.Context) error {
		setup, err := loadSetup(c)
		if err != nil {
			return err
		}

		indices := c.IntSlice("index")
		cellPaths := c.StringSlice("cell")
		if len(indices) != len(cellPaths) {
			return fmt.Errorf("index and cell flags must repeat the same number of times")
		}

		cellIDs := make([]uint64, len(indices))
		cells := make([]*peerdas.Cell, len(indices))
		for i, idx := range indices {
			cellIDs[i] = uint64(idx)
			cell, err := loadCell(cellPaths[i])
			if err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
			cells[i] = cell
		}

		vc := peerdas.NewVerifierContext(setup)
		recoveredCells, recoveredProofs, err := vc.RecoverCellsAndKZGProofs(cellIDs, cells)
		if err != nil {
			return err
		}

		outDir := c.String("out")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		for k := 0; k < peerdas.CellsPerExtBlob; k++ {
			if err := os.WriteFile(filepath.Join(outDir, fmt.Sprintf("cell_%d.bin", k)), recoveredCells[k][:], 0o644); err != nil {
				return fmt.Errorf("writing cell %d: %w", k, err)
			}
			if err := os.WriteFile(filepath.Join(outDir, fmt.Sprintf("proof_%d.bin", k)), recoveredProofs[k][:], 0o644); err != nil {
				return fmt.Errorf("writing proof %d: %w", k, err)
			}
		}
		logger.Info("recovered blob", "supplied", len(cellIDs), "dir", outDir)
		return nil
	},
}

func loadSetup(c *cli.Context) (*kzgsetup.Setup, error) {
	path := c.String("setup")
	if path == "" {
		return nil, fmt.Errorf("--setup (or PEERDAS_SETUP_PATH) is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading setup file: %w", err)
	}
	setup, err := peerdas.LoadSetup(data)
	if err != nil {
		return nil, fmt.Errorf("loading trusted setup: %w", err)
	}
	return setup, nil
}

func loadBlob(path string) (*peerdas.Blob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blob: %w", err)
	}
	var b peerdas.Blob
	if len(data) != len(b) {
		return nil, fmt.Errorf("blob file is %d bytes, want %d", len(data), len(b))
	}
	copy(b[:], data)
	return &b, nil
}

func loadCell(path string) (*peerdas.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cell: %w", err)
	}
	var cell peerdas.Cell
	if len(data) != len(cell) {
		return nil, fmt.Errorf("cell file is %d bytes, want %d", len(data), len(cell))
	}
	copy(cell[:], data)
	return &cell, nil
}

func decodeCommitment(hexStr string) (*peerdas.Commitment, error) {
	b, err := hex.DecodeString(trimHexPrefix(hexStr))
	if err != nil {
		return nil, err
	}
	var c peerdas.Commitment
	if len(b) != len(c) {
		return nil, fmt.Errorf("commitment is %d bytes, want %d", len(b), len(c))
	}
	copy(c[:], b)
	return &c, nil
}

func decodeProof(hexStr string) (*peerdas.Proof, error) {
	b, err := hex.DecodeString(trimHexPrefix(hexStr))
	if err != nil {
		return nil, err
	}
	var p peerdas.Proof
	if len(b) != len(p) {
		return nil, fmt.Errorf("proof is %d bytes, want %d", len(b), len(p))
	}
	copy(p[:], b)
	return &p, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
