package types

import (
	"bytes"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/unkn0wn-root/chaincodec/codecerr"
)

func testValidator(seed byte) ValidatorExtend {
	return ValidatorExtend{
		BLSPubKey:     HexFromBytes([]byte{seed, 2, 3, 4, 5, 6, 7, 8}),
		Address:       MustNewAddress(bytes.Repeat([]byte{seed}, AddressLen)),
		ProposeWeight: 10,
		VoteWeight:    20,
	}
}

func testMetadata() Metadata {
	return Metadata{
		ChainID:        Digest([]byte("muta")),
		CommonRef:      MustNewHex("0x703873635a6b51513451"),
		TimeoutGap:     20,
		CyclesLimit:    1 << 40,
		CyclesPrice:    1,
		Interval:       3000,
		VerifierList:   []ValidatorExtend{testValidator(1), testValidator(2), testValidator(3)},
		ProposeRatio:   15,
		PrevoteRatio:   10,
		PrecommitRatio: 10,
		BrakeRatio:     7,
		TxNumLimit:     20000,
		MaxTxSize:      1 << 20,
	}
}

func mustRLP(t *testing.T, v any) []byte {
	t.Helper()
	b, err := rlp.EncodeToBytes(v)
	if err != nil {
		t.Fatalf("EncodeToBytes: %v", err)
	}
	return b
}

// elemsOf splits an encoded list into its raw elements.
func elemsOf(t *testing.T, b []byte) []rlp.RawValue {
	t.Helper()
	content, _, err := rlp.SplitList(b)
	if err != nil {
		t.Fatal(err)
	}
	elems := []rlp.RawValue{}
	for len(content) > 0 {
		_, _, rest, err := rlp.Split(content)
		if err != nil {
			t.Fatal(err)
		}
		elems = append(elems, content[:len(content)-len(rest)])
		content = rest
	}
	return elems
}

// listOf re-encodes the first n elements of an encoded list.
func listOf(t *testing.T, b []byte, n int) []byte {
	t.Helper()
	return mustRLP(t, elemsOf(t, b)[:n])
}

// ==============================
// Wrapper types
// ==============================

func TestHexRLPLayout(t *testing.T) {
	h := MustNewHex("0xdeadbeef")
	b := mustRLP(t, h)

	// 1-list holding the string "deadbeef"
	want := mustRLP(t, []string{"deadbeef"})
	if !bytes.Equal(b, want) {
		t.Fatalf("layout: got %x want %x", b, want)
	}

	var got Hex
	if err := rlp.DecodeBytes(b, &got); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got.String() != "0xdeadbeef" {
		t.Fatalf("got %s", got)
	}
}

func TestHexDecodeInvalidIsCustom(t *testing.T) {
	for _, s := range []string{"xyz", "abc"} { // non-hex, odd length
		var h Hex
		err := rlp.DecodeBytes(mustRLP(t, []string{s}), &h)
		if !errors.Is(err, codecerr.ErrCustom) {
			t.Fatalf("%q: expected ErrCustom, got %v", s, err)
		}
	}
}

func TestHashAndAddressLayout(t *testing.T) {
	h := Digest([]byte("x"))
	if b := mustRLP(t, h); !bytes.Equal(b, mustRLP(t, [][]byte{h[:]})) {
		t.Fatalf("hash layout: %x", b)
	}
	a := MustNewAddress(bytes.Repeat([]byte{7}, AddressLen))
	if b := mustRLP(t, a); !bytes.Equal(b, mustRLP(t, [][]byte{a[:]})) {
		t.Fatalf("address layout: %x", b)
	}

	var gh Hash
	if err := rlp.DecodeBytes(mustRLP(t, h), &gh); err != nil || gh != h {
		t.Fatalf("hash round trip: %v %v", gh, err)
	}
	var ga Address
	if err := rlp.DecodeBytes(mustRLP(t, a), &ga); err != nil || ga != a {
		t.Fatalf("address round trip: %v %v", ga, err)
	}
}

func TestHashWrongLengthIsInvalidLength(t *testing.T) {
	var h Hash
	err := rlp.DecodeBytes(mustRLP(t, [][]byte{make([]byte, 31)}), &h)
	if !errors.Is(err, codecerr.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	var a Address
	err = rlp.DecodeBytes(mustRLP(t, [][]byte{make([]byte, 32)}), &a)
	if !errors.Is(err, codecerr.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestWrapperArity(t *testing.T) {
	var h Hash
	two := mustRLP(t, [][]byte{make([]byte, 32), make([]byte, 32)})
	if err := rlp.DecodeBytes(two, &h); !errors.Is(err, codecerr.ErrIncorrectListLen) {
		t.Fatalf("expected ErrIncorrectListLen, got %v", err)
	}
	if err := rlp.DecodeBytes(mustRLP(t, make([]byte, 32)), &h); !errors.Is(err, codecerr.ErrExpectedList) {
		t.Fatalf("expected ErrExpectedList, got %v", err)
	}
}

// ==============================
// ValidatorExtend
// ==============================

func TestValidatorRoundTrip(t *testing.T) {
	v := ValidatorExtend{
		BLSPubKey:     MustNewHex("0x0102030405060708"),
		Address:       MustNewAddress(bytes.Repeat([]byte{0xAB}, AddressLen)),
		ProposeWeight: 10,
		VoteWeight:    20,
	}
	b := mustRLP(t, v)

	var got ValidatorExtend
	if err := rlp.DecodeBytes(b, &got); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if got != v {
		t.Fatalf("round trip: got %+v want %+v", got, v)
	}
	if !bytes.Equal(b, mustRLP(t, got)) {
		t.Fatalf("re-encode differs")
	}
}

func TestValidatorFieldsAreNested(t *testing.T) {
	v := testValidator(9)
	l, _, err := rlp.SplitList(mustRLP(t, v))
	if err != nil {
		t.Fatal(err)
	}
	kind, _, rest, err := rlp.Split(l)
	if err != nil || kind != rlp.List {
		t.Fatalf("bls_pub_key should be a nested list, kind=%v err=%v", kind, err)
	}
	kind, _, _, err = rlp.Split(rest)
	if err != nil || kind != rlp.List {
		t.Fatalf("address should be a nested list, kind=%v err=%v", kind, err)
	}
}

func TestValidatorIncorrectListLen(t *testing.T) {
	full := mustRLP(t, testValidator(1))
	for _, n := range []int{0, 1, 3} {
		var v ValidatorExtend
		if err := rlp.DecodeBytes(listOf(t, full, n), &v); !errors.Is(err, codecerr.ErrIncorrectListLen) {
			t.Fatalf("arity %d: expected ErrIncorrectListLen, got %v", n, err)
		}
	}

	five := append(elemsOf(t, full), rlp.RawValue{0x05})
	var v ValidatorExtend
	if err := rlp.DecodeBytes(mustRLP(t, five), &v); !errors.Is(err, codecerr.ErrIncorrectListLen) {
		t.Fatalf("arity 5: expected ErrIncorrectListLen, got %v", err)
	}

	if err := rlp.DecodeBytes(mustRLP(t, []byte("not a list")), &v); !errors.Is(err, codecerr.ErrIncorrectListLen) {
		t.Fatalf("non-list: expected ErrIncorrectListLen, got %v", err)
	}
}

func TestValidatorWeightOverflow(t *testing.T) {
	v := testValidator(1)
	b := mustRLP(t, []any{v.BLSPubKey, v.Address, uint64(1) << 32, uint64(1)})
	var got ValidatorExtend
	err := rlp.DecodeBytes(b, &got)
	if !errors.Is(err, codecerr.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	var fe *codecerr.FieldError
	if !errors.As(err, &fe) || fe.Field != "propose_weight" {
		t.Fatalf("expected FieldError on propose_weight, got %v", err)
	}
}

// ==============================
// Metadata
// ==============================

func TestMetadataRoundTrip(t *testing.T) {
	m := testMetadata()
	b := mustRLP(t, m)

	var got Metadata
	if err := rlp.DecodeBytes(b, &got); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
	if !bytes.Equal(b, mustRLP(t, got)) {
		t.Fatalf("re-encode differs")
	}
}

func TestMetadataEmptyVerifierList(t *testing.T) {
	m := testMetadata()
	m.VerifierList = []ValidatorExtend{}

	var got Metadata
	if err := rlp.DecodeBytes(mustRLP(t, m), &got); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if !reflect.DeepEqual(m, got) {
		t.Fatalf("round trip: got %+v want %+v", got, m)
	}
	if got.VerifierList == nil {
		t.Fatalf("empty verifier list decoded as nil")
	}

	// nil encodes like an empty list
	m.VerifierList = nil
	if err := rlp.DecodeBytes(mustRLP(t, m), &got); err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if diff := cmp.Diff(m, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("nil round trip (-want +got):\n%s", diff)
	}
}

func TestMetadataConcurrentEncodeIsDeterministic(t *testing.T) {
	m := testMetadata()
	want, err := MetadataCodec{}.Encode(m)
	if err != nil {
		t.Fatal(err)
	}

	const workers = 64
	out := make([][]byte, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[i], errs[i] = MetadataCodec{}.Encode(m)
		}()
	}
	wg.Wait()

	for i := range out {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if !bytes.Equal(out[i], want) {
			t.Fatalf("worker %d: bytes differ:\n got %x\nwant %x", i, out[i], want)
		}
	}
}

func TestMetadataFieldOrder(t *testing.T) {
	m := testMetadata()
	b := mustRLP(t, m)
	want := mustRLP(t, []any{
		m.ChainID, m.CommonRef,
		m.TimeoutGap, m.CyclesLimit, m.CyclesPrice, m.Interval,
		m.VerifierList,
		m.ProposeRatio, m.PrevoteRatio, m.PrecommitRatio, m.BrakeRatio,
		m.TxNumLimit, m.MaxTxSize,
	})
	if !bytes.Equal(b, want) {
		t.Fatalf("field order mismatch:\n got %x\nwant %x", b, want)
	}
}

func TestMetadataShortListFailsAtFirstMissingIndex(t *testing.T) {
	full := mustRLP(t, testMetadata())
	for _, n := range []int{0, 1, 6, 7, 12} {
		var m Metadata
		err := rlp.DecodeBytes(listOf(t, full, n), &m)
		if !errors.Is(err, codecerr.ErrIsTooShort) {
			t.Fatalf("arity %d: expected ErrIsTooShort, got %v", n, err)
		}
		var fe *codecerr.FieldError
		if !errors.As(err, &fe) || fe.Index != n {
			t.Fatalf("arity %d: expected FieldError at index %d, got %v", n, n, err)
		}
		if codecerr.ClassOf(err) != codecerr.Structural {
			t.Fatalf("arity %d: expected structural class", n)
		}
	}
}

func TestMetadataLongListRejected(t *testing.T) {
	extra := append(elemsOf(t, mustRLP(t, testMetadata())), rlp.RawValue{0x01})
	var m Metadata
	if err := rlp.DecodeBytes(mustRLP(t, extra), &m); !errors.Is(err, codecerr.ErrIncorrectListLen) {
		t.Fatalf("expected ErrIncorrectListLen, got %v", err)
	}
}

func TestMetadataBadVerifier(t *testing.T) {
	m := testMetadata()
	short := listOf(t, mustRLP(t, m.VerifierList[0]), 3)
	b := mustRLP(t, []any{
		m.ChainID, m.CommonRef,
		m.TimeoutGap, m.CyclesLimit, m.CyclesPrice, m.Interval,
		[]rlp.RawValue{short},
		m.ProposeRatio, m.PrevoteRatio, m.PrecommitRatio, m.BrakeRatio,
		m.TxNumLimit, m.MaxTxSize,
	})
	var got Metadata
	err := rlp.DecodeBytes(b, &got)
	if !errors.Is(err, codecerr.ErrIncorrectListLen) {
		t.Fatalf("expected ErrIncorrectListLen, got %v", err)
	}
	var fe *codecerr.FieldError
	if !errors.As(err, &fe) || fe.Field != "verifier_list" {
		t.Fatalf("expected FieldError on verifier_list, got %v", err)
	}
}
