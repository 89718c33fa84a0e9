package entity

// Format tags the byte-string encodings the module serves. The set is
// closed: the usecase builds its codec registry from these tags and nothing
// else branches on raw strings.
type Format string

const (
	FormatHex       Format = "hex"
	FormatBinary    Format = "binary"
	FormatBase64    Format = "base64"
	FormatBase64URL Format = "base64url"
	FormatBase32    Format = "base32"
	FormatBase58    Format = "base58"
)

// IDKind tags the identifier formats the module generates and parses.
type IDKind string

const (
	// IDKindUUID parses any supported UUID version; generation uses v4.
	IDKindUUID      IDKind = "uuid"
	IDKindUUIDv1    IDKind = "uuid_v1"
	IDKindUUIDv3    IDKind = "uuid_v3"
	IDKindUUIDv4    IDKind = "uuid_v4"
	IDKindUUIDv5    IDKind = "uuid_v5"
	IDKindUUIDv6    IDKind = "uuid_v6"
	IDKindUUIDv7    IDKind = "uuid_v7"
	IDKindULID      IDKind = "ulid"
	IDKindKSUID     IDKind = "ksuid"
	IDKindSnowflake IDKind = "snowflake"
	IDKindNanoID    IDKind = "nanoid"
)

// Digest names the hash functions available to Base58Check.
type Digest string

const (
	DigestMD5    Digest = "md5"
	DigestSHA1   Digest = "sha1"
	DigestSHA256 Digest = "sha256"
	DigestSHA384 Digest = "sha384"
	DigestSHA512 Digest = "sha512"
)
