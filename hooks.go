package chaincodec

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// An entry was deleted by the store on read.
	// reason ∈ {"corrupt", "digest_mismatch", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// A Put encoded a value larger than MaxDecode; Get would never return it.
	OversizeWrite(storageKey string, size int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) OversizeWrite(string, int)  {}

// Self-heal reasons.
const (
	ReasonCorrupt        = "corrupt"
	ReasonDigestMismatch = "digest_mismatch"
	ReasonValueDecode    = "value_decode"
)
