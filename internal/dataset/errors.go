package dataset

import "errors"

var (
	// ErrNoBeds is returned when metrics are requested for an empty bed set
	ErrNoBeds = errors.New("no beds to compute metrics over")

	// ErrNamePoolExhausted is returned when no unused tenant name can be drawn
	ErrNamePoolExhausted = errors.New("tenant name pool exhausted")

	// ErrIntegrity is returned when a dataset breaks a referential or field rule
	ErrIntegrity = errors.New("dataset integrity violation")
)
