// Package domain contains the core domain types used by the passphrase
// generator: words, word pools, composition parameters and passphrases. These
// types are free of infrastructure concerns so they can be shared between the
// CLI, the HTTP API and the composer.
package domain
