// Package proverclient expresses the external prover oracle (spec.md §6
// "Prover oracle") as a Go interface plus an HTTP-based implementation, so
// the engine's witness output can be wired to a real prover service without
// the core depending on one. The request/response shapes mirror the
// JSON-over-HTTP idiom the eudi-zk proof server's handlers use.
package proverclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ava-labs/eerc-go-sdk/contractio"
	"github.com/ava-labs/eerc-go-sdk/eerrors"
)

// Prover computes a Groth16 proof for a witness, given the operation's
// compiled circuit assets. This is the second of the core's two suspension
// points (spec.md §5).
type Prover interface {
	Prove(ctx context.Context, wasmURL, zkeyURL string, witness any) (*contractio.ProofPoints, []string, error)
}

// proveRequest is the wire shape an HTTP prover service expects.
type proveRequest struct {
	WasmURL string          `json:"wasm_url"`
	ZkeyURL string          `json:"zkey_url"`
	Witness json.RawMessage `json:"witness"`
}

// proveResponse is the wire shape an HTTP prover service returns.
type proveResponse struct {
	Proof struct {
		A [2]string    `json:"a"`
		B [2][2]string `json:"b"`
		C [2]string    `json:"c"`
	} `json:"proof"`
	PublicSignals []string `json:"public_signals"`
	Error         string   `json:"error,omitempty"`
}

// HTTPProver is a Prover backed by a remote proving service reachable over
// HTTP, following the same request/respondJSON shape the eudi-zk API
// handlers use on the server side of this same protocol.
type HTTPProver struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPProver builds an HTTPProver with a sane default timeout; proof
// generation is slow, so this deliberately leaves headroom (the eudi-zk
// server sets a 120s write timeout for the same reason).
func NewHTTPProver(endpoint string) *HTTPProver {
	return &HTTPProver{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 120 * time.Second},
	}
}

// Prove POSTs the witness to Endpoint and parses the returned Groth16 proof
// and public signals.
func (p *HTTPProver) Prove(ctx context.Context, wasmURL, zkeyURL string, witness any) (*contractio.ProofPoints, []string, error) {
	witnessJSON, err := json.Marshal(witness)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encoding witness: %v", eerrors.ErrProver, err)
	}

	body, err := json.Marshal(proveRequest{WasmURL: wasmURL, ZkeyURL: zkeyURL, Witness: witnessJSON})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: encoding request: %v", eerrors.ErrProver, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: building request: %v", eerrors.ErrProver, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: request failed: %v", eerrors.ErrProver, err)
	}
	defer resp.Body.Close()

	var out proveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, fmt.Errorf("%w: decoding response: %v", eerrors.ErrProver, err)
	}
	if resp.StatusCode != http.StatusOK || out.Error != "" {
		return nil, nil, fmt.Errorf("%w: prover returned status %d: %s", eerrors.ErrProver, resp.StatusCode, out.Error)
	}

	points, err := parseProofPoints(out.Proof.A, out.Proof.B, out.Proof.C)
	if err != nil {
		return nil, nil, err
	}
	return points, out.PublicSignals, nil
}

func parseProofPoints(a [2]string, b [2][2]string, c [2]string) (*contractio.ProofPoints, error) {
	pp := &contractio.ProofPoints{}
	var err error
	for i := range a {
		if pp.A[i], err = bigFromDecimal(a[i]); err != nil {
			return nil, err
		}
		if pp.C[i], err = bigFromDecimal(c[i]); err != nil {
			return nil, err
		}
		for j := range b[i] {
			if pp.B[i][j], err = bigFromDecimal(b[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return pp, nil
}

func bigFromDecimal(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: malformed proof element %q", eerrors.ErrProver, s)
	}
	return v, nil
}
