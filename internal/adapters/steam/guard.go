package steam

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const guardAlphabet = "23456789BCDFGHJKMNPQRTVWXY"

// guardDigits makes the RFC 6238 truncation come back untouched: the
// truncated value is below 2^31, so ten decimal digits never reduce it.
const guardDigits = otp.Digits(10)

// GuardCode derives the five-symbol Steam Guard login code from a base64
// shared secret at time at.
func GuardCode(sharedSecret string, at time.Time) (string, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(sharedSecret))
	if err != nil {
		return "", fmt.Errorf("decode shared secret: %w", err)
	}

	raw, err := totp.GenerateCodeCustom(base32.StdEncoding.EncodeToString(key), at, totp.ValidateOpts{
		Period:    30,
		Digits:    guardDigits,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("generate guard code: %w", err)
	}

	full, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return "", fmt.Errorf("parse guard code: %w", err)
	}

	code := make([]byte, 5)
	for i := range code {
		code[i] = guardAlphabet[full%uint64(len(guardAlphabet))]
		full /= uint64(len(guardAlphabet))
	}

	return string(code), nil
}

// ConfirmationKey signs a mobile confirmation request for tag at time at.
func ConfirmationKey(identitySecret string, at time.Time, tag string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(identitySecret))
	if err != nil {
		return "", fmt.Errorf("decode identity secret: %w", err)
	}

	buf := make([]byte, 8, 8+len(tag))
	binary.BigEndian.PutUint64(buf, uint64(at.Unix()))
	buf = append(buf, tag...)

	mac := hmac.New(sha1.New, key)
	mac.Write(buf)

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// DeviceID derives the mobile device id the authenticator registers for id.
func DeviceID(id domain.SteamID) string {
	sum := sha1.Sum([]byte(id.String()))
	h := hex.EncodeToString(sum[:])

	return fmt.Sprintf("android:%s-%s-%s-%s-%s", h[0:8], h[8:12], h[12:16], h[16:20], h[20:32])
}
