package peerdas

import (
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/metrics"
)

// LoadSetup parses a trusted setup JSON document into a *kzgsetup.Setup
// ready for NewProverContext/NewVerifierContext. Any problem with the
// document itself — malformed JSON, undersized G1/G2 point slices,
// unparseable hex, a point that fails decompression or the subgroup
// check — surfaces as *Error with Kind InvalidSetup, the same
// taxonomy every other entry point in this package uses, rather than
// the lower-level *kzgsetup.SetupError kzgsetup.LoadFromJSON itself
// returns.
func LoadSetup(data []byte) (*kzgsetup.Setup, error) {
	setup, err := kzgsetup.LoadFromJSON(data)
	if err != nil {
		return nil, newError(InvalidSetup, "%v", err)
	}
	return setup, nil
}

// ProverContext wraps a trusted setup with the operations a blob
// producer needs: committing a blob and computing its cells and proofs.
// A ProverContext is immutable after construction and safe to share
// across any number of goroutines.
type ProverContext struct {
	setup *kzgsetup.Setup

	commitCount  *metrics.Counter
	commitTiming *metrics.Histogram
	cellsCount   *metrics.Counter
	cellsTiming  *metrics.Histogram
}

// NewProverContext builds a ProverContext from a loaded trusted setup.
// Its metrics register against prometheus.DefaultRegisterer; a process
// that builds more than one ProverContext only gets one copy of each
// collector in the registry (later ones still count locally, they are
// just not separately exported).
func NewProverContext(setup *kzgsetup.Setup) *ProverContext {
	return &ProverContext{
		setup:        setup,
		commitCount:  metrics.NewCounter(nil, "peerdas_blob_commitments_total", "blobs committed via BlobToKZGCommitment"),
		commitTiming: metrics.NewHistogram(nil, "peerdas_blob_commitment_duration_ms", "BlobToKZGCommitment latency in milliseconds", nil),
		cellsCount:   metrics.NewCounter(nil, "peerdas_cells_computed_total", "blobs expanded into cells and proofs via ComputeCellsAndKZGProofs"),
		cellsTiming:  metrics.NewHistogram(nil, "peerdas_cells_computed_duration_ms", "ComputeCellsAndKZGProofs latency in milliseconds", nil),
	}
}

// VerifierContext wraps a trusted setup with the operations a data
// availability sampler needs: recovering a blob from a partial cell set
// and batch-verifying cells against their commitments. A
// VerifierContext is immutable after construction and safe to share
// across any number of goroutines.
type VerifierContext struct {
	setup *kzgsetup.Setup

	recoverCount  *metrics.Counter
	recoverTiming *metrics.Histogram
	verifyCount   *metrics.Counter
	verifyTiming  *metrics.Histogram
}

// NewVerifierContext builds a VerifierContext from a loaded trusted
// setup. See NewProverContext's doc comment for the registration caveat
// when more than one context is built in the same process.
func NewVerifierContext(setup *kzgsetup.Setup) *VerifierContext {
	return &VerifierContext{
		setup:         setup,
		recoverCount:  metrics.NewCounter(nil, "peerdas_blob_recoveries_total", "blobs reconstructed via RecoverCellsAndKZGProofs"),
		recoverTiming: metrics.NewHistogram(nil, "peerdas_blob_recovery_duration_ms", "RecoverCellsAndKZGProofs latency in milliseconds", nil),
		verifyCount:   metrics.NewCounter(nil, "peerdas_cell_verify_batches_total", "batches checked via VerifyCellKZGProofBatch"),
		verifyTiming:  metrics.NewHistogram(nil, "peerdas_cell_verify_batch_duration_ms", "VerifyCellKZGProofBatch latency in milliseconds", nil),
	}
}
