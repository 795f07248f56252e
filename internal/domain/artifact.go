package domain

import "encoding/json"

// Artifact is a compiled contract ready for deployment
type Artifact struct {
	Name            string          `json:"name"`
	Path            string          `json:"path"`
	ABI             json.RawMessage `json:"abi"`
	Bytecode        []byte          `json:"-"`
	CompilerVersion string          `json:"compilerVersion,omitempty"`
}
