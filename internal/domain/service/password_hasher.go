// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The hash is
	// self-describing: the algorithm, cost and salt travel inside the string,
	// so verification needs no extra state.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// It fails closed: a malformed or foreign-format hash reports false.
	Check(password, hash string) bool
}
