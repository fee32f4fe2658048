package taxonomy

// builtinTable is the authored vocabulary. Aliases are written in their
// publication spellings; the registry erases case and separator differences
// when it builds the alias index, so "SHA-1", "SHA1" and "sha_1" all collapse
// to one key.
var builtinTable = []AlgorithmEntry{
	// Public-key algorithms broken by Shor's algorithm.
	entry("RSA", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"RSA", "Rivest-Shamir-Adleman", "RSA-OAEP", "RSA-PSS", "RSAES", "PKCS1"),
	entry("DSA", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"DSA", "Digital Signature Algorithm"),
	entry("DH", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"DH", "DHE", "Diffie-Hellman", "Diffie Hellman"),
	entry("ECDH", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"ECDH", "ECDHE", "Elliptic Curve Diffie-Hellman"),
	entry("ECDSA", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"ECDSA", "Elliptic Curve Digital Signature Algorithm"),
	entry("ECC", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"ECC", "Elliptic Curve Cryptography"),
	entry("ElGamal", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"ElGamal", "El Gamal"),
	entry("Ed25519", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"Ed25519"),
	entry("Ed448", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"Ed448"),
	entry("X25519", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"X25519", "Curve25519"),
	entry("X448", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"X448", "Curve448"),
	entry("SM2", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"SM2"),
	entry("SRP", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"SRP", "Secure Remote Password"),
	entry("Paillier", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"Paillier"),
	entry("Rabin", false, cats(CategoryShorVulnerable, CategoryPublicKey),
		"Rabin"),

	// Korean national public-key standards (domestic).
	entry("KCDSA", true, cats(CategoryShorVulnerable, CategoryPublicKey, CategoryKorean),
		"KCDSA", "Korean Certificate-based DSA"),
	entry("EC-KCDSA", true, cats(CategoryShorVulnerable, CategoryPublicKey, CategoryKorean),
		"EC-KCDSA", "ECKCDSA"),

	// Symmetric ciphers weakened by Grover's algorithm.
	entry("AES", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"AES", "Rijndael", "Advanced Encryption Standard"),
	entry("DES", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"DES", "Data Encryption Standard"),
	entry("3DES", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"3DES", "Triple DES", "TDES", "TDEA", "DES-EDE"),
	entry("RC2", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"RC2", "Rivest Cipher 2"),
	entry("RC4", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"RC4", "ARC4", "ARCFOUR", "Rivest Cipher 4"),
	entry("RC5", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"RC5", "Rivest Cipher 5"),
	entry("RC6", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"RC6", "Rivest Cipher 6"),
	entry("Blowfish", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"Blowfish"),
	entry("Twofish", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"Twofish"),
	entry("Serpent", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"Serpent"),
	entry("IDEA", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"IDEA", "International Data Encryption Algorithm"),
	entry("Camellia", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"Camellia"),
	entry("CAST-128", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"CAST-128", "CAST5"),
	entry("ChaCha20", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"ChaCha20", "ChaCha"),
	entry("Salsa20", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"Salsa20"),
	entry("Skipjack", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"Skipjack"),
	entry("TEA", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"TEA", "Tiny Encryption Algorithm"),
	entry("XTEA", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"XTEA", "Extended TEA"),
	entry("MISTY1", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"MISTY1"),
	entry("KASUMI", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategorySymmetricKey),
		"KASUMI"),
	entry("SM4", false, cats(CategoryGroverVulnerable, CategorySymmetricKey),
		"SM4"),

	// Korean national symmetric ciphers (domestic).
	entry("SEED", true, cats(CategoryGroverVulnerable, CategorySymmetricKey, CategoryKorean),
		"SEED", "KISA SEED"),
	entry("ARIA", true, cats(CategoryGroverVulnerable, CategorySymmetricKey, CategoryKorean),
		"ARIA", "KISA ARIA"),
	entry("HIGHT", true, cats(CategoryGroverVulnerable, CategorySymmetricKey, CategoryKorean),
		"HIGHT"),
	entry("LEA", true, cats(CategoryGroverVulnerable, CategorySymmetricKey, CategoryKorean),
		"LEA", "Lightweight Encryption Algorithm"),

	// Hash functions.
	entry("MD2", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"MD2"),
	entry("MD4", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"MD4"),
	entry("MD5", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"MD5", "Message Digest 5"),
	entry("SHA-0", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"SHA-0"),
	entry("SHA-1", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"SHA-1", "SHA1"),
	entry("SHA-224", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHA-224"),
	entry("SHA-256", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHA-256", "SHA2-256"),
	entry("SHA-384", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHA-384", "SHA2-384"),
	entry("SHA-512", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHA-512", "SHA2-512"),
	entry("SHA-3", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHA-3", "Keccak"),
	entry("SHAKE", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SHAKE", "SHAKE128", "SHAKE256"),
	entry("RIPEMD-160", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"RIPEMD-160", "RIPEMD"),
	entry("Whirlpool", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"Whirlpool"),
	entry("BLAKE2", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"BLAKE2", "BLAKE2b", "BLAKE2s"),
	entry("BLAKE3", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"BLAKE3"),
	entry("Tiger", false, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction),
		"Tiger"),
	entry("SM3", false, cats(CategoryGroverVulnerable, CategoryHashFunction),
		"SM3"),

	// Korean national hash standards (domestic).
	entry("HAS-160", true, cats(CategoryGroverVulnerable, CategoryClassicalVulnerable, CategoryHashFunction, CategoryKorean),
		"HAS-160", "Hash Algorithm Standard 160"),
	entry("LSH", true, cats(CategoryGroverVulnerable, CategoryHashFunction, CategoryKorean),
		"LSH"),

	// Password hashing and key derivation.
	entry("PBKDF2", false, cats(CategoryHashFunction),
		"PBKDF2"),
	entry("bcrypt", false, cats(CategoryHashFunction),
		"bcrypt"),
	entry("scrypt", false, cats(CategoryHashFunction),
		"scrypt"),
	entry("Argon2", false, cats(CategoryHashFunction),
		"Argon2", "Argon2id", "Argon2i"),

	// Message authentication codes.
	entry("HMAC", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"HMAC"),
	entry("CMAC", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"CMAC"),
	entry("GMAC", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"GMAC"),
	entry("Poly1305", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"Poly1305"),
	entry("SipHash", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"SipHash"),
	entry("KMAC", false, cats(CategoryGroverVulnerable, CategoryMAC),
		"KMAC"),

	// Post-quantum algorithms. Present so a model claiming "Kyber is
	// quantum-vulnerable" produces a scored false positive instead of
	// vanishing from the confusion sets.
	entry("ML-KEM", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"ML-KEM", "Kyber", "CRYSTALS-Kyber"),
	entry("ML-DSA", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"ML-DSA", "Dilithium", "CRYSTALS-Dilithium"),
	entry("Falcon", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"Falcon"),
	entry("SPHINCS+", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"SPHINCS+", "SPHINCS", "SLH-DSA"),
	entry("XMSS", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"XMSS"),
	entry("LMS", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"LMS"),
	entry("Classic McEliece", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"Classic McEliece", "McEliece"),
	entry("BIKE", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"BIKE"),
	entry("HQC", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"HQC"),
	entry("FrodoKEM", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"FrodoKEM", "Frodo"),
	entry("NTRU", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"NTRU", "NTRUEncrypt"),
	entry("SABER", false, cats(CategoryPostQuantum, CategoryPublicKey),
		"SABER"),
	// Rainbow fell to a classical key-recovery attack in 2022.
	entry("Rainbow", false, cats(CategoryPostQuantum, CategoryClassicalVulnerable, CategoryPublicKey),
		"Rainbow"),
}

func entry(name string, domestic bool, categories []Category, aliases ...string) AlgorithmEntry {
	return AlgorithmEntry{
		CanonicalName: name,
		Aliases:       aliases,
		Categories:    categories,
		Domestic:      domestic,
	}
}

func cats(c ...Category) []Category { return c }

// BuiltinTable returns a copy of the authored vocabulary
func BuiltinTable() []AlgorithmEntry {
	out := make([]AlgorithmEntry, len(builtinTable))
	copy(out, builtinTable)
	return out
}
