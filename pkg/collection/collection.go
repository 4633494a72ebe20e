package collection

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"facetgrid/pkg/types"
)

// Parse decodes a node-tree document from JSON.
func Parse(data []byte) (*types.Node, error) {
	var root types.Node
	if err := sonic.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}
	return &root, nil
}

// Load reads and parses a document file.
func Load(path string) (*types.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	return Parse(data)
}

// Marshal encodes a document back to JSON.
func Marshal(root *types.Node) ([]byte, error) {
	return sonic.Marshal(root)
}
