// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the import lifecycle: load metadata rules,
// fold every input into the tree, decorate, record history and render. It is
// decoupled from any specific entrypoint like a CLI.
package app
