package models

// CredentialRecord is a stored username/password-hash pair.
type CredentialRecord struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}
