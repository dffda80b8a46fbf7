// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/conference, domain/user).
// This root package holds the sentinel error categories and the field-level
// validation error shared by every entity and adapter.
package domain
