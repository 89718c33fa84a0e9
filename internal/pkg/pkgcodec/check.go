package pkgcodec

// DigestFn hashes a byte buffer. Base58Check applies it twice and keeps the
// first four bytes of the result as the checksum.
type DigestFn func([]byte) []byte

const checkLen = 4

// CheckResult is the outcome of DecodeChecked. A checksum mismatch is not
// an error: the payload is returned either way and Valid reports whether it
// verified, so callers decide policy themselves.
type CheckResult struct {
	Payload []byte
	Valid   bool
}

// EncodeChecked appends a double-digest checksum to the payload and renders
// the whole thing in Base58.
func EncodeChecked(payload []byte, digest DigestFn) string {
	sum := digest(digest(payload))

	data := make([]byte, 0, len(payload)+checkLen)
	data = append(data, payload...)
	data = append(data, sum[:checkLen]...)

	return EncodeBase58(data)
}

// DecodeChecked reverses EncodeChecked, recomputing and comparing the
// checksum. Text that is not valid Base58 or decodes to fewer than five
// bytes is an error; a checksum mismatch is reported through Valid.
func DecodeChecked(text string, digest DigestFn) (CheckResult, error) {
	data, err := DecodeBase58(text)
	if err != nil {
		return CheckResult{}, err
	}
	if len(data) < checkLen+1 {
		return CheckResult{}, ErrCheckTooShort
	}

	payload := data[:len(data)-checkLen]
	sum := digest(digest(payload))

	valid := true
	for i := 0; i < checkLen; i++ {
		if data[len(payload)+i] != sum[i] {
			valid = false
			break
		}
	}

	return CheckResult{Payload: payload, Valid: valid}, nil
}
