package domain

import (
	"fmt"
	"strconv"
)

// steamID64Base is the SteamID64 of account id 0 in the public individual universe.
const steamID64Base uint64 = 76561197960265728

type SteamID uint64

// ParseSteamID accepts only the canonical 17-digit SteamID64 form. Vanity
// names are rejected rather than resolved.
func ParseSteamID(raw string) (SteamID, error) {
	if len(raw) != 17 {
		return 0, fmt.Errorf("%w: %q is not a 17-digit steam id", ErrInvalidAccount, raw)
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidAccount, raw)
	}
	if value <= steamID64Base {
		return 0, fmt.Errorf("%w: %q is outside the individual account range", ErrInvalidAccount, raw)
	}

	return SteamID(value), nil
}

func SteamIDFromAccountID(accountID uint32) SteamID {
	return SteamID(steamID64Base + uint64(accountID))
}

// AccountID returns the 32-bit account id used in trade offer partner fields.
func (id SteamID) AccountID() uint32 {
	return uint32(uint64(id) - steamID64Base)
}

func (id SteamID) Valid() bool {
	return uint64(id) > steamID64Base
}

func (id SteamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
