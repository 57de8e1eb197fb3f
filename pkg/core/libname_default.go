//go:build !(js && wasm)

package core

const internalLib = false
