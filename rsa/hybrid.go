//
// hybrid.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package rsa

import (
	"github.com/markkurossi/rsa4096/bigint"
)

const (
	// montMinBits is the modulus bit length below which the
	// Montgomery setup overhead outweighs its savings and classical
	// exponentiation wins.
	montMinBits = 64

	// montMaxWords caps the modulus word count for the Montgomery
	// path. REDC needs roughly twice the modulus width as scratch,
	// so only a conservative fraction of the fixed capacity is safe.
	montMaxWords = bigint.MaxWords / 4
)

// ModExp computes base^exp mod modulus, selecting between Montgomery
// REDC and classical exponentiation. Montgomery is used only when
// the context is active, built for this exact modulus, the modulus
// is odd and large enough to pay for the conversion overhead, and
// its word count leaves the REDC scratch buffer enough headroom. A
// Montgomery failure at runtime falls back to the classical method
// transparently.
func ModExp(base, exp, modulus *bigint.Int, mont *bigint.Montgomery) (
	*bigint.Int, error) {

	if base == nil || exp == nil || modulus == nil {
		return nil, bigint.ErrNilOperand
	}
	if modulus.IsZero() {
		return nil, bigint.ErrZeroModulus
	}

	if useMontgomery(modulus, mont) {
		result, err := mont.Exp(base, exp)
		if err == nil {
			return reduced(result, modulus)
		}
		logger.Warnf("rsa: montgomery exponentiation failed: %s, falling back",
			err)
	}

	result := new(bigint.Int)
	if err := result.ModExp(base, exp, modulus); err != nil {
		return nil, err
	}
	return reduced(result, modulus)
}

// useMontgomery is the deterministic selection policy.
func useMontgomery(modulus *bigint.Int, mont *bigint.Montgomery) bool {
	var reason string
	switch {
	case !mont.Active():
		reason = "context not available"
	case mont.Modulus().Cmp(modulus) != 0:
		reason = "context modulus mismatch"
	case modulus.Bit(0) == 0:
		reason = "even modulus"
	case (modulus.BitLen()+31)/32 > montMaxWords:
		reason = "insufficient scratch capacity"
	case modulus.BitLen() < montMinBits:
		reason = "modulus too small to pay for setup"
	default:
		logger.Debugf("rsa: modexp via montgomery (%d-bit modulus)",
			modulus.BitLen())
		return true
	}
	logger.Debugf("rsa: modexp via classical (%s)", reason)
	return false
}

// reduced applies the defensive final reduction: a result at or
// above the modulus never escapes to the caller.
func reduced(result, modulus *bigint.Int) (*bigint.Int, error) {
	if result.Cmp(modulus) >= 0 {
		if err := result.Mod(result, modulus); err != nil {
			return nil, err
		}
	}
	return result, nil
}
