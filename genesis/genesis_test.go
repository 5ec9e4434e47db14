package genesis

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/chaincodec/types"
)

const sampleTOML = `
chain_id = "0xb6a4d7da21443f5e816e8700eea87610e6d769657d6b8ec73028457bf2ca4036"
common_ref = "0x703873635a6b51513451"
timeout_gap = 20
cycles_limit = 999999999999
cycles_price = 1
interval = 3000
propose_ratio = 15
prevote_ratio = 10
precommit_ratio = 10
brake_ratio = 7
tx_num_limit = 20000
max_tx_size = 1024

[[verifier_list]]
bls_pub_key = "0x04102947214862a503c73904deb5818298a186d68c7907bb609583192a7de6331493835e5b8281f4d9ee705537c0e765580e06f86ddce5867812fceb42eecefd209f0eddd0389d6b7b0100f00fb119ef9ab23826c6ea09aadcc76fa6cea6a32724"
address = "0xf8389d774afdad8755ef8e629e5a154fddc6325a"
propose_weight = 1
vote_weight = 1
`

func sample(t *testing.T) types.Metadata {
	t.Helper()
	m, err := DecodeTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("DecodeTOML: %v", err)
	}
	return m
}

func TestDecodeTOML(t *testing.T) {
	m := sample(t)
	if m.ChainID.String() != "0xb6a4d7da21443f5e816e8700eea87610e6d769657d6b8ec73028457bf2ca4036" {
		t.Fatalf("chain_id = %s", m.ChainID)
	}
	if m.CommonRef.String() != "0x703873635a6b51513451" || m.Interval != 3000 || m.MaxTxSize != 1024 {
		t.Fatalf("scalars: %+v", m)
	}
	if len(m.VerifierList) != 1 || m.VerifierList[0].Address.String() != "0xf8389d774afdad8755ef8e629e5a154fddc6325a" {
		t.Fatalf("verifier_list: %+v", m.VerifierList)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	m := sample(t)
	var buf bytes.Buffer
	if err := EncodeTOML(&buf, m); err != nil {
		t.Fatalf("EncodeTOML: %v", err)
	}
	got, err := DecodeTOML(&buf)
	if err != nil {
		t.Fatalf("DecodeTOML: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONMatchesTOML(t *testing.T) {
	m := sample(t)
	doc := `{
		"chain_id": "0xb6a4d7da21443f5e816e8700eea87610e6d769657d6b8ec73028457bf2ca4036",
		"common_ref": "0x703873635a6b51513451",
		"timeout_gap": 20, "cycles_limit": 999999999999, "cycles_price": 1, "interval": 3000,
		"verifier_list": [{
			"bls_pub_key": "` + m.VerifierList[0].BLSPubKey.String() + `",
			"address": "0xf8389d774afdad8755ef8e629e5a154fddc6325a",
			"propose_weight": 1, "vote_weight": 1
		}],
		"propose_ratio": 15, "prevote_ratio": 10, "precommit_ratio": 10, "brake_ratio": 7,
		"tx_num_limit": 20000, "max_tx_size": 1024
	}`
	got, err := DecodeJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("json vs toml (-toml +json):\n%s", diff)
	}

	h1, _ := m.Hash()
	h2, _ := got.Hash()
	if h1 != h2 {
		t.Fatalf("equal documents must hash equally")
	}
}

func TestUnknownKeysRejected(t *testing.T) {
	_, err := DecodeTOML(strings.NewReader(sampleTOML + "\nextra = 1\n"))
	if !errors.Is(err, ErrUnknownKeys) || !strings.Contains(err.Error(), "extra") {
		t.Fatalf("toml: expected ErrUnknownKeys naming the key, got %v", err)
	}
	if _, err := DecodeJSON(strings.NewReader(`{"bogus": 1}`)); err == nil {
		t.Fatalf("json: expected unknown field error")
	}
}

func TestMalformedValues(t *testing.T) {
	bad := strings.Replace(sampleTOML, `common_ref = "0x703873635a6b51513451"`, `common_ref = "0x123"`, 1)
	if _, err := DecodeTOML(strings.NewReader(bad)); err == nil {
		t.Fatalf("odd-length hex should fail")
	}
	bad = strings.Replace(sampleTOML, `address = "0xf8389d774afdad8755ef8e629e5a154fddc6325a"`, `address = "0xf8"`, 1)
	if _, err := DecodeTOML(strings.NewReader(bad)); err == nil {
		t.Fatalf("short address should fail")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.Metadata)
		want   error
	}{
		{"chain id", func(m *types.Metadata) { m.ChainID = types.Hash{} }, ErrNoChainID},
		{"verifiers", func(m *types.Metadata) { m.VerifierList = nil }, ErrNoVerifiers},
		{"ratios", func(m *types.Metadata) {
			m.ProposeRatio, m.PrevoteRatio, m.PrecommitRatio, m.BrakeRatio = 0, 0, 0, 0
		}, ErrNoRatios},
		{"duplicate", func(m *types.Metadata) {
			m.VerifierList = append(m.VerifierList, m.VerifierList[0])
		}, ErrDuplicateVerifier},
	}
	for _, tc := range cases {
		m := sample(t)
		tc.mutate(&m)
		if err := Validate(m); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if err := EncodeTOML(&bytes.Buffer{}, m); !errors.Is(err, tc.want) {
			t.Errorf("%s: EncodeTOML should validate, got %v", tc.name, err)
		}
	}
}

func TestDecodeReturnsZeroOnInvalid(t *testing.T) {
	bad := strings.Replace(sampleTOML, "propose_ratio = 15", "propose_ratio = 0", 1)
	bad = strings.Replace(bad, "prevote_ratio = 10", "prevote_ratio = 0", 1)
	bad = strings.Replace(bad, "precommit_ratio = 10", "precommit_ratio = 0", 1)
	bad = strings.Replace(bad, "brake_ratio = 7", "brake_ratio = 0", 1)
	m, err := DecodeTOML(strings.NewReader(bad))
	if !errors.Is(err, ErrNoRatios) {
		t.Fatalf("expected ErrNoRatios, got %v", err)
	}
	if diff := cmp.Diff(types.Metadata{}, m); diff != "" {
		t.Fatalf("invalid document must not return a value (-want +got):\n%s", diff)
	}

	m, err = DecodeJSON(strings.NewReader(`{"verifier_list": []}`))
	if !errors.Is(err, ErrNoChainID) {
		t.Fatalf("expected ErrNoChainID, got %v", err)
	}
	if diff := cmp.Diff(types.Metadata{}, m); diff != "" {
		t.Fatalf("invalid document must not return a value (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "genesis.toml")
	if err := os.WriteFile(p, []byte(sampleTOML), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err != nil {
		t.Fatalf("Load toml: %v", err)
	}

	y := filepath.Join(dir, "genesis.yaml")
	if err := os.WriteFile(y, []byte("x: 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(y); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}
