package sdk

// Validator is implemented by values that check their own fields before they are used, such
// as sessions and per-chain contract registries.
type Validator interface {
	Validate() error
}
